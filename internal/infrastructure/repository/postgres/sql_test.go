package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get league: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestPQErrorClassification(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	if !isForeignKeyViolation(fk) {
		t.Fatalf("expected foreign key violation")
	}
	if isCheckViolation(fk) {
		t.Fatalf("foreign key error is not a check violation")
	}

	check := &pq.Error{Code: "23514"}
	if !isCheckViolation(check) {
		t.Fatalf("expected check violation")
	}
	if isForeignKeyViolation(errors.New("plain")) {
		t.Fatalf("plain error must not classify")
	}
}

func TestContainsPattern(t *testing.T) {
	cases := map[string]string{
		"arsenal": "%arsenal%",
		" man u ": "%man u%",
		"100%":    `%100\%%`,
		`a_b\c`:   `%a\_b\\c%`,
	}
	for in, want := range cases {
		if got := containsPattern(in); got != want {
			t.Fatalf("containsPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNullHelpers(t *testing.T) {
	if v := nullString("  "); v.Valid {
		t.Fatalf("blank string must be NULL")
	}
	if v := nullPositiveInt64(0); v.Valid {
		t.Fatalf("zero id must be NULL")
	}
	if v := nullPositiveInt(38); !v.Valid || v.Int32 != 38 {
		t.Fatalf("unexpected value: %+v", v)
	}

	zero := 0
	if v := nullIntPtr(&zero); !v.Valid || v.Int32 != 0 {
		t.Fatalf("explicit zero score must be kept: %+v", v)
	}
	if got := nullIntToPtr(sql.NullInt32{}); got != nil {
		t.Fatalf("expected nil pointer for NULL")
	}
	if v := nullTime(time.Time{}); v.Valid {
		t.Fatalf("zero time must be NULL")
	}
}
