package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-data/internal/platform/logging"
)

func TestRun_RequiresCommand(t *testing.T) {
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRun_RequiresDBURL(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata-missing.env")
	t.Setenv("DB_URL", "")

	err := run([]string{"up"}, logging.NewNop())
	if err == nil || err.Error() != "DB_URL is required" {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{"3"}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	for _, raw := range []string{"0", "-1", "two"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://u:p@localhost:5432/football_data", true)
	if got != "postgres://u:p@localhost:5432/football_data?disable_prepared_binary_result=yes" {
		t.Fatalf("unexpected url: %q", got)
	}
	in := "postgres://u:p@localhost:5432/football_data"
	if got := normalizeDBURL(in, false); got != in {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}
