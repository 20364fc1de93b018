package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-data/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["success"].(bool); !got {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_NotFoundHasNoData(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: league 7", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["success"].(bool); got {
		t.Fatalf("expected success=false")
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect data key in error response")
	}
	if got, _ := body["error"].(string); got != "resource not found: league 7" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrNotFound, want: http.StatusNotFound},
		{name: "unauthorized", err: usecase.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, want: http.StatusServiceUnavailable},
		{name: "upstream", err: fmt.Errorf("fetch: %w", usecase.ErrUpstream), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Fatalf("statusForError(%v)=%d want=%d", tt.err, got, tt.want)
			}
			documented := fmt.Sprintf("'%d':", tt.want)
			if !strings.Contains(string(openAPISpec), documented) {
				t.Fatalf("status %d is not documented in openapi.yaml", tt.want)
			}
		})
	}
}
