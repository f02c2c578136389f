// Package postgres stores workspace blobs, saved reports and report jobs in
// Postgres through a pgx pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"impactlens/internal/ports"
)

const (
	defaultMaxConns    = 10
	defaultHealthCheck = 30 * time.Second
	defaultPingTimeout = 5 * time.Second
	applicationName    = "impactlens"
)

// DB implements the key/value, report and job ports on one pool.
type DB struct {
	Pool *pgxpool.Pool
}

var (
	_ ports.KVStore          = (*DB)(nil)
	_ ports.ReportRepository = (*DB)(nil)
	_ ports.JobRepository    = (*DB)(nil)
)

// PoolOptions size the pool. Zero fields keep the defaults.
type PoolOptions struct {
	MaxConns    int32
	PingTimeout time.Duration
}

func poolConfig(url string, opts PoolOptions) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	cfg.MaxConns = defaultMaxConns
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.HealthCheckPeriod = defaultHealthCheck
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	return cfg, nil
}

// Connect opens the pool and checks the server answers within the ping
// timeout.
func Connect(ctx context.Context, url string, opts PoolOptions) (*DB, error) {
	cfg, err := poolConfig(url, opts)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() { db.Pool.Close() }
