package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

func (db *DB) EnqueueReportJob(ctx context.Context, metrics json.RawMessage) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO report_jobs (metrics) VALUES ($1::jsonb) RETURNING id
	`, string(metrics)).Scan(&id)
	return id, err
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ReportJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		SELECT id, metrics FROM report_jobs
		WHERE status = 'queued'
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&job.ID, &job.Metrics)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE report_jobs SET status='running', started_at=COALESCE(started_at, now()), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

// StartJob locks a specific queued job and marks it running.
func (db *DB) StartJob(ctx context.Context, jobID string) (job ports.ReportJob, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		SELECT id, metrics FROM report_jobs
		WHERE id::text = $1 AND status = 'queued'
		FOR UPDATE SKIP LOCKED
	`, jobID).Scan(&job.ID, &job.Metrics)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, domain.ErrNotFound
	}
	if err != nil {
		return job, err
	}
	if _, err = tx.Exec(ctx, `
		UPDATE report_jobs SET status='running', started_at=COALESCE(started_at, now()), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return job, err
	}
	return job, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID, reportID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE report_jobs SET status='completed', report_id=$2, error=NULL, finished_at=now() WHERE id::text=$1
	`, jobID, reportID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE report_jobs SET status='failed', error=$2, finished_at=now() WHERE id::text=$1
	`, jobID, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) JobStatus(ctx context.Context, jobID string) (domain.ReportJob, error) {
	var j domain.ReportJob
	var status string
	var reason *string
	err := db.Pool.QueryRow(ctx, `
		SELECT id, status, report_id::text, error, attempts, queued_at, started_at, finished_at
		FROM report_jobs WHERE id::text = $1
	`, jobID).Scan(&j.ID, &status, &j.ReportID, &reason, &j.Attempts, &j.QueuedAt, &j.StartedAt, &j.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return j, domain.ErrNotFound
	}
	if err != nil {
		return j, err
	}
	j.Status = domain.JobStatus(status)
	if reason != nil {
		j.Error = *reason
	}
	return j, nil
}
