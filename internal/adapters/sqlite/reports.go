package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"impactlens/internal/domain"
)

func (db *DB) SaveReport(ctx context.Context, content string, metrics json.RawMessage) (domain.Report, error) {
	r := domain.Report{ID: uuid.NewString(), Content: content, Metrics: metrics}
	created := db.nowMillis()
	var m sql.NullString
	if len(metrics) > 0 {
		m = sql.NullString{String: string(metrics), Valid: true}
	}
	if _, err := db.sql.ExecContext(ctx,
		`INSERT INTO reports (id, content, metrics, created_at) VALUES (?, ?, ?, ?)`,
		r.ID, content, m, created); err != nil {
		return domain.Report{}, err
	}
	r.CreatedAt = fromMillis(created)
	return r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (domain.Report, error) {
	var r domain.Report
	var metrics sql.NullString
	var created int64
	if err := row.Scan(&r.ID, &r.Content, &metrics, &created); err != nil {
		return r, err
	}
	if metrics.Valid {
		r.Metrics = json.RawMessage(metrics.String)
	}
	r.CreatedAt = fromMillis(created)
	return r, nil
}

func (db *DB) GetReport(ctx context.Context, id string) (domain.Report, error) {
	r, err := scanReport(db.sql.QueryRowContext(ctx,
		`SELECT id, content, metrics, created_at FROM reports WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return r, domain.ErrNotFound
	}
	return r, err
}

func (db *DB) ListReports(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, content, metrics, created_at FROM reports ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Report{}
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
