package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNew_WritesServiceFieldsAndPairs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{
		Level:       LevelInfo,
		ServiceName: "football-data",
		Environment: "dev",
		Output:      &buf,
	})

	logger.Info("sync finished", "operation", "leagues", "records", 3, "error", errors.New("boom"))

	line := buf.String()
	for _, want := range []string{
		`"msg":"sync finished"`,
		`"service":"football-data"`,
		`"env":"dev"`,
		`"operation":"leagues"`,
		`"records":3`,
		`"error":"boom"`,
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %s in log line, got %s", want, line)
		}
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Output: &buf})

	logger.InfoContext(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info entry to be dropped, got %s", buf.String())
	}

	logger.WarnContext(context.Background(), "kept")
	if !strings.Contains(buf.String(), `"msg":"kept"`) {
		t.Fatalf("expected warn entry, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		" error ": LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil child logger")
	}
}

func TestLogger_TeeWritesToExtraCore(t *testing.T) {
	t.Parallel()

	var base, extra bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &base})
	extraCore := New(Options{Level: LevelError, Output: &extra}).Zap().Core()

	teed := logger.Tee(extraCore, nil)
	teed.Info("info only")
	teed.Error("provider down", "league_id", int64(39))

	if strings.Count(base.String(), "\n") != 2 {
		t.Fatalf("expected both entries in base output, got %s", base.String())
	}
	if strings.Contains(extra.String(), "info only") || !strings.Contains(extra.String(), `"league_id":39`) {
		t.Fatalf("expected only the error entry in extra output, got %s", extra.String())
	}
}
