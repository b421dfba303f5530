package scoped

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Query is a site-scoped query ready to run.
type Query[T any] struct {
	db       Querier
	model    string
	sql      string
	countSQL string
	args     []any
	empty    bool
}

// Empty reports whether the query is known to match nothing.
func (q *Query[T]) Empty() bool {
	return q.empty
}

// SQL returns the statement and its arguments. Empty queries return "".
func (q *Query[T]) SQL() (string, []any) {
	return q.sql, q.args
}

// All runs the query and maps rows onto T by column name.
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	if q.empty {
		return []T{}, nil
	}

	rows, err := q.db.Query(ctx, q.sql, q.args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQueryFailed, q.model, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQueryFailed, q.model, err)
	}
	return items, nil
}

// Count returns the number of matching rows.
func (q *Query[T]) Count(ctx context.Context) (int64, error) {
	if q.empty {
		return 0, nil
	}

	var n int64
	if err := q.db.QueryRow(ctx, q.countSQL, q.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrQueryFailed, q.model, err)
	}
	return n, nil
}
