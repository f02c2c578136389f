package memstore

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

func (s *Store) EnqueueReportJob(_ context.Context, metrics json.RawMessage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := &domain.ReportJob{
		ID:       uuid.NewString(),
		Status:   domain.JobQueued,
		Metrics:  append(json.RawMessage(nil), metrics...),
		QueuedAt: s.now().UTC(),
	}
	s.jobs[job.ID] = job
	s.queue = append(s.queue, job.ID)
	return job.ID, nil
}

// ClaimNext pops the oldest queued job and marks it running.
func (s *Store) ClaimNext(_ context.Context) (ports.ReportJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]
		job, ok := s.jobs[id]
		if !ok || job.Status != domain.JobQueued {
			continue
		}
		s.start(job)
		return ports.ReportJob{ID: job.ID, Metrics: job.Metrics}, true, nil
	}
	return ports.ReportJob{}, false, nil
}

// StartJob marks a specific queued job running, for inline processing.
func (s *Store) StartJob(_ context.Context, jobID string) (ports.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok || job.Status != domain.JobQueued {
		return ports.ReportJob{}, domain.ErrNotFound
	}
	s.start(job)
	return ports.ReportJob{ID: job.ID, Metrics: job.Metrics}, nil
}

func (s *Store) start(job *domain.ReportJob) {
	now := s.now().UTC()
	job.Status = domain.JobRunning
	job.Attempts++
	if job.StartedAt == nil {
		job.StartedAt = &now
	}
}

func (s *Store) MarkCompleted(_ context.Context, jobID, reportID string) error {
	return s.finish(jobID, domain.JobCompleted, reportID, "")
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	return s.finish(jobID, domain.JobFailed, "", reason)
}

func (s *Store) finish(jobID string, status domain.JobStatus, reportID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	now := s.now().UTC()
	job.Status = status
	job.FinishedAt = &now
	job.Error = reason
	if reportID != "" {
		job.ReportID = &reportID
	}
	return nil
}

func (s *Store) JobStatus(_ context.Context, jobID string) (domain.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return domain.ReportJob{}, domain.ErrNotFound
	}
	return *job, nil
}
