package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	mongostore "github.com/passaqui/passaqui-api/internal/infrastructure/db/mongo"
)

const (
	probeTimeout     = 3 * time.Second
	maxCollections   = 10
	maxProbeErrorLen = 50
)

// DiagnosticHandler serves GET / and GET /test.
//
// The /test report is best-effort observability for humans: every sub-check is
// guarded independently, a failing check degrades only its own field, and the
// endpoint always answers 200 — even with no store handle at all.
type DiagnosticHandler struct {
	db *mongo.Database // nil when the process started without a store
}

func NewDiagnosticHandler(db *mongo.Database) *DiagnosticHandler {
	return &DiagnosticHandler{db: db}
}

type diagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"name,omitempty"`
	DatabaseURLSet   string   `json:"database_url"`
	DatabaseNameSet  string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root acknowledges that the backend is up.
//
// @Summary      Root acknowledgment
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *DiagnosticHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "PassaQui backend en ligne",
	})
}

// Report answers the best-effort store diagnostic.
//
// @Summary      Store diagnostic report
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  diagnosticResponse
// @Router       /test [get]
func (h *DiagnosticHandler) Report(c echo.Context) error {
	resp := diagnosticResponse{
		Backend:          "running",
		Database:         "not initialized",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db != nil {
		resp.Database = "available"
		resp.DatabaseName = h.db.Name()
		resp.ConnectionStatus = "connected"

		ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
		defer cancel()

		names, err := mongostore.CollectionNames(ctx, h.db, maxCollections)
		if err != nil {
			resp.Database = "connected but degraded: " + truncate(err.Error(), maxProbeErrorLen)
		} else {
			resp.Database = "connected"
			resp.Collections = names
		}
	}

	resp.DatabaseURLSet = envSet("DATABASE_URL")
	resp.DatabaseNameSet = envSet("DATABASE_NAME")

	return c.JSON(http.StatusOK, resp)
}

func envSet(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
