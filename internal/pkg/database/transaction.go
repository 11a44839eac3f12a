package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// WithinTransaction executes fn inside a database transaction. The open
// transaction is carried on the context so repositories pick it up through
// GetQuerier and every write inside fn commits or rolls back as one unit.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Joining an outer transaction: the caller owns commit and rollback.
	if _, ok := ctx.Value("tx").(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, "tx", tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns the transaction carried on the context, or the pool.
func GetQuerier(ctx context.Context, db *DB) Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
