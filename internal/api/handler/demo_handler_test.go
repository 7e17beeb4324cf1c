package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serveDemo(t *testing.T, fn echo.HandlerFunc, path string) map[string]any {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := fn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestDemoHandler_Messages(t *testing.T) {
	resp := serveDemo(t, NewDemoHandler().Messages, "/demo/messages")

	convo, ok := resp["conversation"].([]any)
	if !ok || len(convo) != 3 {
		t.Fatalf("expected 3 conversation entries, got %v", resp["conversation"])
	}
	first := convo[0].(map[string]any)
	if first["from"] != "Vous" || first["time"] != "10:02" {
		t.Fatalf("unexpected first message: %+v", first)
	}
}

func TestDemoHandler_Wallet(t *testing.T) {
	resp := serveDemo(t, NewDemoHandler().Wallet, "/demo/wallet")

	if resp["balance"] != 30.0 {
		t.Fatalf("expected balance 30.0, got %v", resp["balance"])
	}
	history, ok := resp["history"].([]any)
	if !ok || len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %v", resp["history"])
	}
}

func TestDemoHandler_Profiles(t *testing.T) {
	resp := serveDemo(t, NewDemoHandler().Profiles, "/demo/profiles")

	profiles, ok := resp["profiles"].([]any)
	if !ok || len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %v", resp["profiles"])
	}
	top := profiles[0].(map[string]any)
	if top["name"] != "Camille" || top["reviews"] != 58.0 {
		t.Fatalf("unexpected first profile: %+v", top)
	}
}

func TestDemoHandler_Achievements(t *testing.T) {
	resp := serveDemo(t, NewDemoHandler().Achievements, "/demo/achievements")

	achievements, ok := resp["achievements"].([]any)
	if !ok || len(achievements) != 2 {
		t.Fatalf("expected 2 achievements, got %v", resp["achievements"])
	}
}
