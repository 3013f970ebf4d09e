// Package sqlbuilder composes parameterized SELECT statements for PostgreSQL on top of squirrel.
//
// A Query is an immutable value: every method returns a new Query and never mutates the
// receiver, so a base query holding shared filters can be extended into a result query and a
// count query without either one observing the other.
package sqlbuilder

import (
	sq "github.com/Masterminds/squirrel"
)

// Direction is the sort direction of an ORDER BY term
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// JoinKind is the SQL join keyword
type JoinKind string

const (
	Inner JoinKind = "INNER JOIN"
	Left  JoinKind = "LEFT JOIN"
)

// Query is a SELECT statement under construction.
//
// FROM, joins and predicates live in the squirrel builder, which is persistent and safe to
// branch. Columns, ordering and pagination are applied at render time so Count can drop them.
type Query struct {
	base    sq.SelectBuilder
	columns []string
	orders  []string
	limit   int
	offset  int
	count   bool
}

// From starts a query over table. The table expression is written verbatim, so aliases
// such as "contract_token AS ct" are allowed.
func From(table string) Query {
	return Query{base: sq.Select().From(table)}
}

// Select replaces the selected columns. No columns means "*".
func (q Query) Select(columns ...string) Query {
	q.columns = append([]string(nil), columns...)
	return q
}

// Join adds a join with a raw ON condition, args bind to its placeholders
func (q Query) Join(kind JoinKind, table, on string, args ...any) Query {
	q.base = q.base.JoinClause(string(kind)+" "+table+" ON "+on, cloneArgs(args)...)
	return q
}

// InnerJoin is Join with Inner
func (q Query) InnerJoin(table, on string, args ...any) Query {
	return q.Join(Inner, table, on, args...)
}

// LeftJoin is Join with Left
func (q Query) LeftJoin(table, on string, args ...any) Query {
	return q.Join(Left, table, on, args...)
}

// Where adds a raw predicate. Predicates are parenthesized and combined with AND.
func (q Query) Where(predicate string, args ...any) Query {
	q.base = q.base.Where("("+predicate+")", cloneArgs(args)...)
	return q
}

// WhereEq adds "column = ?"
func (q Query) WhereEq(column string, value any) Query {
	return q.Where(column+" = ?", value)
}

// WhereNullable adds a NULL-aware equality: a nil value matches NULL rows only,
// a non-nil value matches equal rows only.
func (q Query) WhereNullable(column string, value *string) Query {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *value)
}

// WhereContains adds a case-insensitive substring match of expr against s
func (q Query) WhereContains(expr, s string) Query {
	return q.Where("LOWER("+expr+") LIKE LOWER(?)", Contains(s))
}

// OrderBy appends an ORDER BY term
func (q Query) OrderBy(expr string, dir Direction) Query {
	q.orders = append(append(make([]string, 0, len(q.orders)+1), q.orders...), expr+" "+string(dir))
	return q
}

// Limit sets the row limit, n <= 0 removes it
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// Offset sets the number of skipped rows, n <= 0 removes it
func (q Query) Offset(n int) Query {
	q.offset = n
	return q
}

// Count turns the query into "SELECT COUNT(*)" over the same FROM, joins and predicates.
// Ordering and pagination are dropped.
func (q Query) Count() Query {
	q.count = true
	q.orders = nil
	q.limit = 0
	q.offset = 0
	return q
}

// ToSQL renders the statement with "?" placeholders and returns the bindings in placeholder order
func (q Query) ToSQL() (string, []any, error) {
	return q.render(sq.Question).ToSql()
}

// Build renders the statement with PostgreSQL positional placeholders ($1, $2, ...)
func (q Query) Build() (string, []any, error) {
	return q.render(sq.Dollar).ToSql()
}

func (q Query) render(format sq.PlaceholderFormat) sq.SelectBuilder {
	b := q.base.PlaceholderFormat(format)

	switch {
	case q.count:
		return b.Column("COUNT(*) AS count")
	case len(q.columns) == 0:
		b = b.Column("*")
	default:
		b = b.Columns(q.columns...)
	}

	if len(q.orders) > 0 {
		b = b.OrderBy(q.orders...)
	}
	if q.limit > 0 {
		b = b.Limit(uint64(q.limit))
	}
	if q.offset > 0 {
		b = b.Offset(uint64(q.offset))
	}
	return b
}

// Contains wraps s in LIKE wildcards
func Contains(s string) string {
	return "%" + s + "%"
}

// cloneArgs detaches the bindings from a caller slice passed with args...
func cloneArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	return append([]any(nil), args...)
}
