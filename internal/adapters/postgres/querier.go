package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// querier позволяет выполнять запросы одинаково через пул и через
// открытую транзакцию.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
