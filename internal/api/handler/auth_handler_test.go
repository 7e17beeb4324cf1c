package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/passaqui/passaqui-api/internal/core/domain"
	"github.com/passaqui/passaqui-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (string, error)
	loginFn  func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (string, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validSignupBody = `{
	"first_name": "Camille",
	"last_name": "Leoni",
	"phone": "+33600000001",
	"email": "camille@example.com",
	"location": "Ajaccio",
	"status": "Student",
	"reason": "Livraisons entre Ajaccio et Bastia",
	"password": "secret1"
}`

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, error) {
			if input.Email != "camille@example.com" || input.Status != domain.StatusStudent {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "68d1e2f3a4b5c6d7e8f90a1b", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/signup", validSignupBody)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != "68d1e2f3a4b5c6d7e8f90a1b" {
		t.Fatalf("unexpected user_id: %v", resp["user_id"])
	}
	if resp["message"] != "Compte créé avec succès" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Signup_ValidationFailures(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, error) {
			t.Fatalf("service must not be called on invalid payloads")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	cases := map[string]string{
		"short password": strings.Replace(validSignupBody, `"secret1"`, `"abc"`, 1),
		"bad status":     strings.Replace(validSignupBody, `"Student"`, `"Retired"`, 1),
		"bad email":      strings.Replace(validSignupBody, `"camille@example.com"`, `"not-an-email"`, 1),
		"missing field":  strings.Replace(validSignupBody, `"first_name": "Camille",`, ``, 1),
	}

	for name, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/auth/signup", body)
		err := h.Signup(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422 HTTPError, got %v", name, err)
		}
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup", validSignupBody)
	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "camille@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{
				ID:        "68d1e2f3a4b5c6d7e8f90a1b",
				FirstName: "Camille",
				LastName:  "Leoni",
				Email:     email,
				Password:  "secret1",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"camille@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if strings.Contains(rec.Body.String(), "secret1") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password must never be echoed back: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object in response")
	}
	if user["id"] != "68d1e2f3a4b5c6d7e8f90a1b" || user["first_name"] != "Camille" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"camille@example.com","password":"wrong-pass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Signup_MalformedBody(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (string, error) {
			t.Fatalf("service must not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup", "not-json")
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
