package postgres

import (
	"context"
	"fmt"
	"strings"

	"banking-core/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// filter accumulates WHERE conditions. Each "?" in an expression is
// replaced by the next positional parameter.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(expr string, args ...any) {
	for _, a := range args {
		f.args = append(f.args, a)
		expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", len(f.args)), 1)
	}
	f.conds = append(f.conds, expr)
}

// period adds inclusive creation-time bounds on column.
func (f *filter) period(column string, p domain.Period) {
	if p.After != nil {
		f.add(column+" >= ?", *p.After)
	}
	if p.Before != nil {
		f.add(column+" <= ?", *p.Before)
	}
}

func (f *filter) clause() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// listPage counts the matching rows and fetches one page of them.
func listPage[T any](
	ctx context.Context,
	pool Pool,
	table, columns, orderBy string,
	f filter,
	page domain.Page,
	scan func(pgx.Row) (T, error),
) ([]T, int64, error) {
	where := f.clause()

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", table, where)
	if err := pool.QueryRow(ctx, countQuery, f.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}

	n := len(f.args)
	dataQuery := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, table, where, orderBy, n+1, n+2)
	args := append(append([]any{}, f.args...), page.Limit, page.Offset)

	rows, err := pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s row: %w", table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s rows: %w", table, err)
	}
	return items, total, nil
}
