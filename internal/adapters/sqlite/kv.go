package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

func (db *DB) Get(ctx context.Context, workspace, key string) ([]byte, bool, error) {
	var value string
	err := db.sql.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE workspace = ? AND key = ?`, workspace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (db *DB) Put(ctx context.Context, workspace, key string, value []byte) error {
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO kv_entries (workspace, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (workspace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, workspace, key, string(value), db.nowMillis())
	return err
}

func (db *DB) Delete(ctx context.Context, workspace, key string) (bool, error) {
	res, err := db.sql.ExecContext(ctx, `DELETE FROM kv_entries WHERE workspace = ? AND key = ?`, workspace, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *DB) Keys(ctx context.Context, workspace string) ([]string, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT key FROM kv_entries WHERE workspace = ? ORDER BY key`, workspace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
