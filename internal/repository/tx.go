package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// If we're already in a transaction (pool is nil), just use the existing queries
	if pool == nil {
		return fn(q)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(context.WithoutCancel(ctx))
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

type transactor struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) port.Transactor {
	return &transactor{
		q:    db.New(pool),
		pool: pool,
	}
}

func (t *transactor) InTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	_, err := withTx(ctx, t.pool, t.q, func(qtx *db.Queries) (struct{}, error) {
		return struct{}{}, fn(txRepositories{q: qtx})
	})

	return err
}

// txRepositories hands out repositories sharing one transaction.
type txRepositories struct {
	q *db.Queries
}

func (r txRepositories) Products() port.ProductRepository {
	return &productRepository{q: r.q}
}

func (r txRepositories) Carts() port.CartRepository {
	return &cartRepository{q: r.q}
}

func (r txRepositories) Orders() port.OrderRepository {
	return &orderRepository{q: r.q}
}

func (r txRepositories) Outbox() port.OutboxRepository {
	return &outboxRepository{q: r.q}
}

func (r txRepositories) Categories() port.CategoryRepository {
	return &categoryRepository{q: r.q}
}

func (r txRepositories) Stats() port.StatsRepository {
	return &statsRepository{q: r.q}
}

type poolRepositories struct {
	pool *pgxpool.Pool
}

// NewRepositories returns repositories that run each call on the pool.
func NewRepositories(pool *pgxpool.Pool) port.Repositories {
	return poolRepositories{pool: pool}
}

func (r poolRepositories) Products() port.ProductRepository {
	return NewProduct(r.pool)
}

func (r poolRepositories) Carts() port.CartRepository {
	return NewCart(r.pool)
}

func (r poolRepositories) Orders() port.OrderRepository {
	return NewOrder(r.pool)
}

func (r poolRepositories) Outbox() port.OutboxRepository {
	return NewOutbox(r.pool)
}

func (r poolRepositories) Categories() port.CategoryRepository {
	return NewCategory(r.pool)
}

func (r poolRepositories) Stats() port.StatsRepository {
	return NewStats(r.pool)
}
