package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Only handler entry points get their own span; response helpers and
// middleware reuse the request span.
const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("football-data/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !strings.HasPrefix(name, handlerSpanPrefix) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}
