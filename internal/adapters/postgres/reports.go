package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"impactlens/internal/domain"
)

// ReportRepository

func (db *DB) SaveReport(ctx context.Context, content string, metrics json.RawMessage) (domain.Report, error) {
	r := domain.Report{Content: content, Metrics: metrics}
	var m any
	if len(metrics) > 0 {
		m = string(metrics)
	}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO reports (content, metrics)
		VALUES ($1, $2::jsonb)
		RETURNING id, created_at
	`, content, m).Scan(&r.ID, &r.CreatedAt)
	return r, err
}

func (db *DB) GetReport(ctx context.Context, id string) (domain.Report, error) {
	var r domain.Report
	var metrics []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT id, content, metrics, created_at FROM reports WHERE id::text = $1
	`, id).Scan(&r.ID, &r.Content, &metrics, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r, domain.ErrNotFound
	}
	if err != nil {
		return r, err
	}
	r.Metrics = metrics
	return r, nil
}

func (db *DB) ListReports(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id, content, metrics, created_at FROM reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Report{}
	for rows.Next() {
		var r domain.Report
		var metrics []byte
		if err := rows.Scan(&r.ID, &r.Content, &metrics, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Metrics = metrics
		out = append(out, r)
	}
	return out, rows.Err()
}
