package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

func (db *DB) EnqueueReportJob(ctx context.Context, metrics json.RawMessage) (string, error) {
	id := uuid.NewString()
	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO report_jobs (id, metrics, queued_at) VALUES (?, ?, ?)`,
		id, string(metrics), db.nowMillis())
	return id, err
}

// ClaimNext takes the oldest queued job. The single connection serializes
// concurrent claimers, so the select and update need no row lock.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ReportJob, found bool, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var metrics string
	err = tx.QueryRowContext(ctx, `
		SELECT id, metrics FROM report_jobs
		WHERE status = 'queued'
		ORDER BY queued_at, rowid
		LIMIT 1
	`).Scan(&job.ID, &metrics)
	if errors.Is(err, sql.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	job.Metrics = json.RawMessage(metrics)
	if err = db.markRunning(ctx, tx, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) StartJob(ctx context.Context, jobID string) (job ports.ReportJob, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return job, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var metrics string
	err = tx.QueryRowContext(ctx,
		`SELECT id, metrics FROM report_jobs WHERE id = ? AND status = 'queued'`, jobID).Scan(&job.ID, &metrics)
	if errors.Is(err, sql.ErrNoRows) {
		return job, domain.ErrNotFound
	}
	if err != nil {
		return job, err
	}
	job.Metrics = json.RawMessage(metrics)
	err = db.markRunning(ctx, tx, job.ID)
	return job, err
}

func (db *DB) markRunning(ctx context.Context, tx *sql.Tx, id string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE report_jobs SET status = 'running', started_at = COALESCE(started_at, ?), attempts = attempts + 1
		WHERE id = ?
	`, db.nowMillis(), id)
	return err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID, reportID string) error {
	return db.finish(ctx, `
		UPDATE report_jobs SET status = 'completed', report_id = ?, error = NULL, finished_at = ? WHERE id = ?
	`, reportID, db.nowMillis(), jobID)
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	return db.finish(ctx, `
		UPDATE report_jobs SET status = 'failed', error = ?, finished_at = ? WHERE id = ?
	`, reason, db.nowMillis(), jobID)
}

func (db *DB) finish(ctx context.Context, query string, args ...any) error {
	res, err := db.sql.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) JobStatus(ctx context.Context, jobID string) (domain.ReportJob, error) {
	var (
		j        domain.ReportJob
		status   string
		reportID sql.NullString
		reason   sql.NullString
		queued   int64
		started  sql.NullInt64
		finished sql.NullInt64
	)
	err := db.sql.QueryRowContext(ctx, `
		SELECT id, status, report_id, error, attempts, queued_at, started_at, finished_at
		FROM report_jobs WHERE id = ?
	`, jobID).Scan(&j.ID, &status, &reportID, &reason, &j.Attempts, &queued, &started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return j, domain.ErrNotFound
	}
	if err != nil {
		return j, err
	}
	j.Status = domain.JobStatus(status)
	if reportID.Valid {
		j.ReportID = &reportID.String
	}
	j.Error = reason.String
	j.QueuedAt = fromMillis(queued)
	j.StartedAt = fromNullMillis(started)
	j.FinishedAt = fromNullMillis(finished)
	return j, nil
}
