package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/football-data/internal/platform/logging"
)

func TestSwaggerRoutes(t *testing.T) {
	logger := logging.NewNop()
	handler := NewHandler(nil, nil, nil, logger)

	t.Run("enabled", func(t *testing.T) {
		router := NewRouter(handler, logger, RouterConfig{SwaggerEnabled: true})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
		if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "openapi: 3.0.3") {
			t.Fatalf("unexpected spec response: %d %q", rec.Code, rec.Body.String()[:min(40, rec.Body.Len())])
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "url: '/openapi.yaml'") {
			t.Fatalf("unexpected docs response: %d", rec.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		router := NewRouter(handler, logger, RouterConfig{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 with docs disabled, got %d", rec.Code)
		}
	})
}
