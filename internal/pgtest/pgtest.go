// Package pgtest starts a throwaway postgres container with the storefront schema.
package pgtest

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:17.6-alpine3.22"

// Truncate empties every storefront table.
const Truncate = "TRUNCATE TABLE outbox, order_items, orders, cart_items, products, categories CASCADE"

type DB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

func Start(ctx context.Context) (*DB, error) {
	container, err := postgres.Run(ctx, image,
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(initScripts()...),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("pc.ConnectionString: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	return &DB{Container: container, Pool: pool}, nil
}

func (d *DB) Close() error {
	d.Pool.Close()

	if err := testcontainers.TerminateContainer(d.Container); err != nil {
		return fmt.Errorf("testcontainers.TerminateContainer: %w", err)
	}

	return nil
}

func initScripts() []string {
	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "migrations")

	scripts := make([]string, 0, len(migrations.Names()))
	for _, name := range migrations.Names() {
		scripts = append(scripts, filepath.Join(dir, name))
	}

	return scripts
}
