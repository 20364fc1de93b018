package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause using $n placeholders.
type Condition interface {
	appendSQL(w *sqlWriter)
}

type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) write(s string) {
	w.buf.WriteString(s)
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// writeExpr copies expr, replacing each '?' with the next bound argument.
func (w *sqlWriter) writeExpr(expr string, exprArgs []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(expr[i])
	}
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func (c compareCondition) appendSQL(w *sqlWriter) {
	w.write(c.column)
	w.write(" ")
	w.write(c.op)
	w.write(" ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func Lt(column string, value any) Condition {
	return compareCondition{column: column, op: "<", value: value}
}

// ILike matches column case-insensitively against pattern.
func ILike(column string, pattern string) Condition {
	return compareCondition{column: column, op: "ILIKE", value: pattern}
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(w *sqlWriter) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}

	w.write(c.column)
	w.write(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds a raw SQL fragment; '?' marks are bound in order.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *sqlWriter) {
	w.writeExpr(c.expr, c.args)
}

type groupCondition struct {
	joiner     string
	conditions []Condition
}

// And groups conditions in parentheses joined by AND.
func And(conditions ...Condition) Condition {
	return groupCondition{joiner: " AND ", conditions: conditions}
}

// Or groups conditions in parentheses joined by OR.
func Or(conditions ...Condition) Condition {
	return groupCondition{joiner: " OR ", conditions: conditions}
}

func (c groupCondition) appendSQL(w *sqlWriter) {
	if len(c.conditions) == 0 {
		w.write("1=1")
		return
	}
	w.write("(")
	for i, cond := range c.conditions {
		if i > 0 {
			w.write(c.joiner)
		}
		cond.appendSQL(w)
	}
	w.write(")")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &sqlWriter{}
	w.write("SELECT ")
	w.write(strings.Join(b.columns, ", "))
	w.write(" FROM ")
	w.write(b.table)
	writeWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.write(" ORDER BY ")
		w.write(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ")
		w.write(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL after VALUES, typically an ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := &sqlWriter{args: make([]any, 0, len(b.rows)*len(b.columns))}
	w.write("INSERT INTO ")
	w.write(b.table)
	w.write(" (")
	w.write(strings.Join(b.columns, ", "))
	w.write(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.write(", ")
		}
		w.write("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.write(", ")
			}
			w.bind(value)
		}
		w.write(")")
	}

	if b.suffix != "" {
		w.write(" ")
		w.write(b.suffix)
	}

	return w.buf.String(), w.args, nil
}

func writeWhere(w *sqlWriter, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.appendSQL(w)
	}
}
