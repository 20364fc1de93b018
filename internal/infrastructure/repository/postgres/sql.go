package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == pqForeignKeyViolation
}

func isCheckViolation(err error) bool {
	return pqCode(err) == pqCheckViolation
}

func nullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// nullPositiveInt64 treats zero as unknown.
func nullPositiveInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}

func nullPositiveInt(v int) sql.NullInt32 {
	return sql.NullInt32{Int32: int32(v), Valid: v > 0}
}

func nullIntPtr(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func nullInt64Value(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func nullIntValue(v sql.NullInt32) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int32)
}

func nullIntToPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func nullTime(v time.Time) sql.NullTime {
	return sql.NullTime{Time: v.UTC(), Valid: !v.IsZero()}
}

// containsPattern builds an ILIKE pattern that matches q literally.
func containsPattern(q string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(q)) + "%"
}
