package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-data/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type responseEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// syncEnvelope is the response of manual sync triggers.
type syncEnvelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_, _ = buf.WriteString(`{"success":false,"error":"encode response failed"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{Success: true, Data: data})
}

func writeSyncResult(ctx context.Context, w http.ResponseWriter, message string, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSyncResult")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, syncEnvelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeJSON(ctx, w, statusForError(err), responseEnvelope{Error: err.Error()})
}

func writeErrorMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, responseEnvelope{Error: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
