package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// KVStore

func (db *DB) Get(ctx context.Context, workspace, key string) ([]byte, bool, error) {
	var value []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT value FROM kv_entries WHERE workspace = $1 AND key = $2
	`, workspace, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (db *DB) Put(ctx context.Context, workspace, key string, value []byte) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO kv_entries (workspace, key, value, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (workspace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, workspace, key, string(value))
	return err
}

func (db *DB) Delete(ctx context.Context, workspace, key string) (bool, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM kv_entries WHERE workspace = $1 AND key = $2`, workspace, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *DB) Keys(ctx context.Context, workspace string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT key FROM kv_entries WHERE workspace = $1 ORDER BY key`, workspace)
	if err != nil {
		return nil, err
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
