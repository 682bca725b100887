// Package store persists imported data in PostgreSQL using pgx.
//
// The store owns the durable side of an import: committing parsed rows,
// reconciling stock levels and profit against known cost prices, and
// serving the dashboard queries (metrics summary, low stock, goals).
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sellerpulse/internal/config"
)

// Store wraps a pgx connection pool with the application's queries.
type Store struct {
	pool *pgxpool.Pool

	// lowStockThreshold is the fallback stock level treated as low
	// when a product has no reorder point.
	lowStockThreshold int
}

// New creates a Store backed by an existing pool.
func New(pool *pgxpool.Pool, lowStockThreshold int) *Store {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}
	return &Store{pool: pool, lowStockThreshold: lowStockThreshold}
}

// NewPool opens and pings a pgx connection pool configured from cfg.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Ping verifies database connectivity, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}
