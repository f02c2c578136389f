package reportrunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
	"impactlens/internal/telemetry"
)

// Processor performs the report work for a claimed job and returns the id of
// the saved report.
type Processor interface {
	Process(ctx context.Context, job ports.ReportJob) (reportID string, err error)
}

type Options struct {
	Concurrency  int
	PollInterval time.Duration
	Logger       *zap.Logger
	Metrics      *telemetry.Metrics
}

// Run claims queued jobs and hands them to workers until ctx is done. It
// returns once every worker has exited.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, opts Options) {
	if opts.Concurrency < 1 {
		return
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	jobsCh := make(chan ports.ReportJob, opts.Concurrency)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobsCh)
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			for {
				job, found, err := repo.ClaimNext(ctx)
				if err != nil {
					if ctx.Err() == nil {
						log.Error("job claim error", zap.Error(err))
					}
					break
				}
				if !found {
					break
				}
				select {
				case jobsCh <- job:
				case <-ctx.Done():
					// Already marked running; record why it never ran.
					_ = repo.MarkFailed(context.WithoutCancel(ctx), job.ID, "shutdown before processing")
					return
				}
			}
		}
	}()

	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				finish(ctx, repo, processor, job, log.With(zap.Int("worker", idx)), opts.Metrics)
			}
		}(i)
	}
	wg.Wait()
}

func finish(ctx context.Context, repo ports.JobRepository, processor Processor, job ports.ReportJob, log *zap.Logger, m *telemetry.Metrics) error {
	reportID, err := processor.Process(ctx, job)
	// Status writes must land even when shutdown cancelled the work.
	wctx := context.WithoutCancel(ctx)
	if err != nil {
		m.JobFinished(string(domain.JobFailed))
		log.Warn("report job failed", zap.String("job_id", job.ID), zap.Error(err))
		if merr := repo.MarkFailed(wctx, job.ID, err.Error()); merr != nil {
			log.Error("mark failed", zap.String("job_id", job.ID), zap.Error(merr))
		}
		return err
	}
	m.JobFinished(string(domain.JobCompleted))
	if err := repo.MarkCompleted(wctx, job.ID, reportID); err != nil {
		log.Error("mark completed", zap.String("job_id", job.ID), zap.Error(err))
		return err
	}
	log.Info("report job completed", zap.String("job_id", job.ID), zap.String("report_id", reportID))
	return nil
}

// ProcessInline starts a specific queued job and runs it synchronously with
// the same logic the background workers use.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, jobID string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	job, err := repo.StartJob(ctx, jobID)
	if err != nil {
		return err
	}
	return finish(ctx, repo, processor, job, log, nil)
}
