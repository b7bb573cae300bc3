package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"gridkit/internal/grid"
)

// Loader services grid read requests from a single PostgreSQL table:
// the grid's filter state becomes a parameterized WHERE clause, the
// sort state an ORDER BY, and the page window LIMIT/OFFSET. Column
// Field names must be the table's column names.
type Loader[T any] struct {
	db    *DB
	table string
}

// NewLoader creates a loader over the given table.
func NewLoader[T any](database *DB, table string) *Loader[T] {
	return &Loader[T]{db: database, table: table}
}

// Read fetches one page of pre-filtered, pre-sorted rows plus the
// unpaged total, for handing back to the grid via SetData.
func (l *Loader[T]) Read(ctx context.Context, req grid.ReadRequest) ([]*T, int, error) {
	countSQL, selectSQL, args := buildQuery(l.table, req)

	var total int
	if err := l.db.Conn.QueryRow(ctx, countSQL, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count rows: %w", err)
	}

	rows, err := l.db.Conn.Query(ctx, selectSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query page: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, 0, fmt.Errorf("scan rows: %w", err)
	}
	return items, total, nil
}

// buildQuery renders the count and page queries for a read request.
// The final two args are always the LIMIT and OFFSET values, so the
// count query uses args[:len(args)-2].
func buildQuery(table string, req grid.ReadRequest) (countSQL, selectSQL string, args []any) {
	var where strings.Builder
	for _, f := range req.Filters {
		if where.Len() == 0 {
			where.WriteString(" WHERE ")
		} else {
			where.WriteString(" AND ")
		}
		args = append(args, filterArg(f))
		where.WriteString(filterClause(f, len(args)))
	}

	countSQL = fmt.Sprintf(`SELECT count(*) FROM %q%s`, table, where.String())

	var order string
	if req.Sort != nil {
		dir := "ASC"
		if req.Sort.Direction == grid.Descending {
			dir = "DESC"
		}
		order = fmt.Sprintf(` ORDER BY %q %s`, req.Sort.Field, dir)
	}

	args = append(args, req.PageSize, (req.Page-1)*req.PageSize)
	selectSQL = fmt.Sprintf(`SELECT * FROM %q%s%s LIMIT $%d OFFSET $%d`,
		table, where.String(), order, len(args)-1, len(args))
	return countSQL, selectSQL, args
}

// filterClause renders one filter as a predicate over the column cast
// to text, case-insensitive to match the grid's local filtering.
func filterClause(f grid.FilterState, param int) string {
	switch f.Method {
	case grid.Equals:
		return fmt.Sprintf(`lower(%q::text) = lower($%d)`, f.Field, param)
	case grid.NotEquals:
		return fmt.Sprintf(`lower(%q::text) <> lower($%d)`, f.Field, param)
	default:
		return fmt.Sprintf(`%q::text ILIKE $%d`, f.Field, param)
	}
}

// filterArg renders the search text as the method's match argument.
func filterArg(f grid.FilterState) string {
	switch f.Method {
	case grid.StartsWith:
		return escapeLike(f.Search) + "%"
	case grid.EndsWith:
		return "%" + escapeLike(f.Search)
	case grid.Equals, grid.NotEquals:
		return f.Search
	default:
		return "%" + escapeLike(f.Search) + "%"
	}
}

// escapeLike escapes LIKE metacharacters in user-entered search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
