// Package sqlite is a single-file store for workspaces, reports and report
// jobs. All access goes through one connection, so claims are serialized.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"impactlens/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	workspace  TEXT    NOT NULL,
	key        TEXT    NOT NULL,
	value      TEXT    NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (workspace, key)
);
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT    PRIMARY KEY,
	content    TEXT    NOT NULL,
	metrics    TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_created_at_idx ON reports (created_at DESC);
CREATE TABLE IF NOT EXISTS report_jobs (
	id          TEXT    PRIMARY KEY,
	status      TEXT    NOT NULL DEFAULT 'queued',
	metrics     TEXT    NOT NULL,
	report_id   TEXT,
	error       TEXT,
	attempts    INTEGER NOT NULL DEFAULT 0,
	queued_at   INTEGER NOT NULL,
	started_at  INTEGER,
	finished_at INTEGER
);
CREATE INDEX IF NOT EXISTS report_jobs_status_idx ON report_jobs (status, queued_at);
`

type DB struct {
	sql *sql.DB
	now func() time.Time
}

var (
	_ ports.KVStore          = (*DB)(nil)
	_ ports.ReportRepository = (*DB)(nil)
	_ ports.JobRepository    = (*DB)(nil)
)

// Open opens (creating if needed) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &DB{sql: sqlDB, now: time.Now}, nil
}

func (db *DB) Close() error { return db.sql.Close() }

func (db *DB) nowMillis() int64 { return db.now().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func fromNullMillis(ms sql.NullInt64) *time.Time {
	if !ms.Valid {
		return nil
	}
	t := fromMillis(ms.Int64)
	return &t
}
