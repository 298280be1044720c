package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// selectQuery builds a parameterised SELECT. Conditions use `?` placeholders which are
// rewritten to pgx positional parameters by Build.
type selectQuery struct {
	columns []string
	from    string
	joins   []string
	where   []string
	args    []interface{}
	orderBy []string
	limit   int
	offset  int
}

func newSelect(cols ...string) *selectQuery {
	return &selectQuery{columns: cols}
}

func (q *selectQuery) From(table string) *selectQuery {
	q.from = table
	return q
}

func (q *selectQuery) Join(clause string) *selectQuery {
	q.joins = append(q.joins, clause)
	return q
}

func (q *selectQuery) Where(condition string, args ...interface{}) *selectQuery {
	q.where = append(q.where, condition)
	q.args = append(q.args, args...)
	return q
}

// WhereAnyILike adds a case-insensitive substring match over any of cols.
func (q *selectQuery) WhereAnyILike(term string, cols ...string) *selectQuery {
	if len(cols) == 0 {
		return q
	}
	pattern := "%" + escapeLike(term) + "%"
	conds := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		conds = append(conds, col+" ILIKE ?")
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func (q *selectQuery) OrderBy(order ...string) *selectQuery {
	q.orderBy = append(q.orderBy, order...)
	return q
}

func (q *selectQuery) Limit(limit int) *selectQuery {
	q.limit = limit
	return q
}

func (q *selectQuery) Offset(offset int) *selectQuery {
	q.offset = offset
	return q
}

func (q *selectQuery) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	for _, j := range q.joins {
		sb.WriteString(" ")
		sb.WriteString(j)
	}
	if len(q.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.where, " AND "))
	}
	if len(q.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.orderBy, ", "))
	}
	if q.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.limit)
	}
	if q.offset > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", q.offset)
	}

	return rebind(sb.String()), q.args
}

// rebind replaces each `?` with $1, $2, ...
func rebind(query string) string {
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// orderClause turns a client ordering such as "-age" into SQL using the allowed column
// map. Unknown fields fall back to def. Ties are broken by tiebreak.
func orderClause(ordering string, allowed map[string]string, def, tiebreak string) []string {
	clause := def
	field := strings.TrimSpace(ordering)
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")
	if col, ok := allowed[field]; ok {
		clause = col + " ASC"
		if desc {
			clause = col + " DESC"
		}
	}
	return []string{clause, tiebreak}
}
