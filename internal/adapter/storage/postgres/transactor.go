package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// localWriteTxOptions applies to every local write that follows a remote
// mutation.
var localWriteTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.ReadCommitted,
	AccessMode: pgx.ReadWrite,
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	pool Pool
	opts pgx.TxOptions
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool, opts: localWriteTxOptions}
}

// Begin starts a read-write transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.BeginTx(ctx, t.opts)
	if err != nil {
		return nil, fmt.Errorf("begin local write tx: %w", err)
	}
	return tx, nil
}
