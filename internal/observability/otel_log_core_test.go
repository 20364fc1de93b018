package observability

import (
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
)

func TestShouldSkipOTelLog(t *testing.T) {
	if !shouldSkipOTelLog("http request", map[string]any{"path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipOTelLog("http request", map[string]any{"path": "/api/football-data/leagues"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipOTelLog("sync finished", map[string]any{"path": "/healthz"}) {
		t.Fatalf("did not expect other messages to be skipped")
	}
}

func TestBuildOTelLogAttributes_SortsAndDropsTraceFields(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"operation": "standings",
		"league_id": int64(39),
		"trace_id":  "4bf92f3577b34da6a3ce929d0e0e4736",
		"span_id":   "00f067aa0ba902b7",
	})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "league_id" || attrs[0].Value.AsInt64() != 39 {
		t.Fatalf("unexpected first attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "operation" || attrs[1].Value.AsString() != "standings" {
		t.Fatalf("unexpected second attribute: %+v", attrs[1])
	}
}

func TestContextFromTraceFields(t *testing.T) {
	ctx := contextFromTraceFields(map[string]any{
		"trace_id": "4bf92f3577b34da6a3ce929d0e0e4736",
		"span_id":  "00f067aa0ba902b7",
	})
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() || spanCtx.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("expected restored span context, got %+v", spanCtx)
	}

	if trace.SpanContextFromContext(contextFromTraceFields(map[string]any{"trace_id": "zz"})).IsValid() {
		t.Fatalf("expected invalid ids to be ignored")
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"failed":  1,
		"success": true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}
