package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestStartSpan_WithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()

	got, span := startSpan(ctx, "httpapi.Handler.ListLiveMatches")
	defer span.End()
	if got != ctx {
		t.Fatalf("expected context unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected noop span")
	}
}

func TestStartSpan_HelperNamesReuseParent(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	for _, name := range []string{"httpapi.RequestLogging", "httpapi.writeError", ""} {
		got, span := startSpan(ctx, name)
		span.End()
		if got != ctx {
			t.Fatalf("startSpan(%q) should not derive a new context", name)
		}
	}
}
