// Package app assembles adapters from configuration for the binaries.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"impactlens/internal/adapters/memstore"
	pg "impactlens/internal/adapters/postgres"
	"impactlens/internal/adapters/sqlite"
	"impactlens/internal/config"
	"impactlens/internal/llm"
	"impactlens/internal/logging"
	"impactlens/internal/ports"
)

// Backend is everything the services persist through. The memory, SQLite
// and Postgres adapters all provide it.
type Backend interface {
	ports.KVStore
	ports.ReportRepository
	ports.JobRepository
}

// Logger builds the logger for cfg: the environment picks the defaults and
// LOG_LEVEL / LOG_FORMAT override them.
func Logger(cfg config.Config) (*zap.Logger, error) {
	lc := logging.ForEnvironment(cfg.Env)
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	return logging.New(lc)
}

// OpenBackend opens the store selected by STORE_DRIVER. Postgres is migrated
// to the latest schema first. The returned func releases the store.
func OpenBackend(ctx context.Context, cfg config.Config, log *zap.Logger) (Backend, func(), error) {
	switch cfg.StoreDriver {
	case "", "memory":
		log.Info("using in-memory store; data is lost on restart")
		return memstore.New(), func() {}, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using sqlite store", zap.String("path", cfg.SQLitePath))
		return db, func() { _ = db.Close() }, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("DATABASE_URL is required for the postgres store")
		}
		if err := pg.Migrate(ctx, cfg.DatabaseURL, "up"); err != nil {
			return nil, nil, err
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.PoolOptions{MaxConns: int32(cfg.DatabaseMaxConns)})
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		log.Info("using postgres store")
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewLLM builds the completion client for the configured provider.
func NewLLM(ctx context.Context, cfg config.LLMConfig) (llm.Client, error) {
	temperature := cfg.Temperature
	return llm.New(ctx, llm.Config{
		Provider:    cfg.Provider,
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: &temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})
}
