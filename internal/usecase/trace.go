package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("football-data/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only creates child spans; without a sampled parent the
// work is not traced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// annotateSyncSpan copies the sync counters onto the active span and marks it
// errored when no item succeeded.
func annotateSyncSpan(ctx context.Context, result SyncResult) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("sync.operation", result.Operation),
		attribute.Int("sync.success", result.Success),
		attribute.Int("sync.failed", result.Failed),
		attribute.Int("sync.records", result.Records),
	)
	if result.Failed > 0 && result.Success == 0 {
		span.SetStatus(codes.Error, "all sync items failed")
	}
}
