package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the `db` tags of a struct value.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// Upsert describes an INSERT ... ON CONFLICT DO UPDATE keyed by ConflictColumns.
// Every other tagged column is overwritten from EXCLUDED unless listed in
// Overrides (column -> SQL expression) or Preserve. ExtraSets are appended
// verbatim, e.g. "updated_at = NOW()".
type Upsert struct {
	Table           string
	ConflictColumns []string
	Overrides       map[string]string
	Preserve        []string
	ExtraSets       []string
}

// UpsertModel builds an idempotent insert-or-update for model.
func UpsertModel(spec Upsert, model any) (string, []any, error) {
	if len(spec.ConflictColumns) == 0 {
		return "", nil, fmt.Errorf("upsert conflict columns are required")
	}

	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}

	skip := make(map[string]struct{}, len(spec.ConflictColumns)+len(spec.Preserve))
	for _, col := range spec.ConflictColumns {
		skip[col] = struct{}{}
	}
	for _, col := range spec.Preserve {
		skip[col] = struct{}{}
	}

	sets := make([]string, 0, len(cols))
	for _, col := range cols {
		if _, ok := skip[col]; ok {
			continue
		}
		if expr, ok := spec.Overrides[col]; ok {
			sets = append(sets, col+" = "+expr)
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	if len(sets) > 0 {
		sets = append(sets, spec.ExtraSets...)
	}

	suffix := "ON CONFLICT (" + strings.Join(spec.ConflictColumns, ", ") + ")"
	if len(sets) == 0 {
		suffix += " DO NOTHING"
	} else {
		suffix += " DO UPDATE SET " + strings.Join(sets, ", ")
	}

	return InsertInto(spec.Table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, opts, _ := strings.Cut(strings.TrimSpace(field.Tag.Get("db")), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" || strings.Contains(opts, "readonly") {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
