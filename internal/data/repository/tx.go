package repository

import (
	"context"
	"errors"
	"fmt"

	"bioskop-ticket/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Transactor runs fn inside a single database transaction.
// Repositories called with the ctx given to fn join that transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactor(db database.PgxIface, log *zap.Logger) Transactor {
	return &pgxTransactor{
		db:  db,
		log: log.With(zap.String("repository", "tx")),
	}
}

// WithTx commits only when fn returns nil, every other path rolls back.
// Nested calls reuse the outer transaction.
func (t *pgxTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		t.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.Background())
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(context.Background()); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				t.log.Warn("Failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		t.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// conn returns the transaction bound to ctx, or the pool.
func conn(ctx context.Context, db database.PgxIface) database.Querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
