package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"dexbot/internal/model"
)

// PostgresRepository implements Repository using a pgx connection pool.
type PostgresRepository struct {
	Pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and verifies the connection.
func NewPostgresRepository(ctx context.Context, url string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresRepository{Pool: pool}, nil
}

const createTradesTableSQL = `
CREATE TABLE IF NOT EXISTS trades (
	id SERIAL PRIMARY KEY,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	pair_address TEXT,
	action TEXT,
	amount NUMERIC,
	price NUMERIC
);`

// Migrate creates the trades table if it does not exist yet.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, createTradesTableSQL); err != nil {
		return fmt.Errorf("create trades table: %w", err)
	}
	return nil
}

// AppendTrade inserts one trade record; id and timestamp are assigned by
// the database.
func (r *PostgresRepository) AppendTrade(ctx context.Context, record model.TradeRecord) error {
	query := `INSERT INTO trades (pair_address, action, amount, price) VALUES ($1, $2, $3, $4)`
	_, err := r.Pool.Exec(ctx, query, record.PairAddress, record.Action, record.Amount, record.Price)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *PostgresRepository) Close() {
	r.Pool.Close()
}
