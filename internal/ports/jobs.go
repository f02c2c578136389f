package ports

import (
	"context"
	"encoding/json"

	"impactlens/internal/domain"
)

type ReportJob struct {
	ID      string
	Metrics json.RawMessage
}

// JobRepository supports queueing, claiming and updating report jobs.
type JobRepository interface {
	EnqueueReportJob(ctx context.Context, metrics json.RawMessage) (jobID string, err error)
	ClaimNext(ctx context.Context) (job ReportJob, found bool, err error)
	StartJob(ctx context.Context, jobID string) (job ReportJob, err error)
	MarkCompleted(ctx context.Context, jobID, reportID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	JobStatus(ctx context.Context, jobID string) (domain.ReportJob, error)
}
