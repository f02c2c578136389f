package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"impactlens/internal/api"
	"impactlens/internal/domain"
	"impactlens/internal/logging"
	"impactlens/internal/workers/reportrunner"
)

const (
	reportFailure      = "Failed to generate ESG report"
	defaultWaitSeconds = 30
	maxWaitSeconds     = 300
	jobPollInterval    = 200 * time.Millisecond
)

var (
	errNullBody     = errors.New("body is null")
	errTrailingData = errors.New("unexpected data after body")
)

// decodeMetrics reads exactly one JSON object from the body.
func decodeMetrics(r *http.Request) (api.MetricsRequest, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	var body *api.MetricsRequest
	if err := dec.Decode(&body); err != nil {
		return api.MetricsRequest{}, err
	}
	if body == nil {
		return api.MetricsRequest{}, errNullBody
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return api.MetricsRequest{}, errTrailingData
	}
	return *body, nil
}

// GenerateReport never reveals why generation failed: every error, the body
// parse included, is logged and answered with the same message.
func (s *Server) GenerateReport(w http.ResponseWriter, r *http.Request) {
	if !s.allowReport(w) {
		return
	}
	log := logging.FromContext(r.Context())
	body, err := decodeMetrics(r)
	if err != nil {
		log.Error("generate report: decode body", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: reportFailure})
		return
	}
	text, err := s.reports.Generate(r.Context(), body.Metrics)
	if err != nil {
		log.Error("generate report", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: reportFailure})
		return
	}
	writeJSON(w, http.StatusOK, api.GeneratedReport{Report: text})
}

// SaveReport accepts the body whatever its content type, since the report
// page posts it as plain text.
func (s *Server) SaveReport(w http.ResponseWriter, r *http.Request) {
	var body api.SaveReportJSONRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.reports.Save(r.Context(), body.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.SavedReport{Id: rep.ID})
}

func (s *Server) ListReports(w http.ResponseWriter, r *http.Request, params api.ListReportsParams) {
	list, err := s.reports.List(r.Context(), valueOr(params.Limit, 0))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Report{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) GetReport(w http.ResponseWriter, r *http.Request, id api.ID) {
	rep, err := s.reports.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) GetReportPDF(w http.ResponseWriter, r *http.Request, id api.ID) {
	pdf, err := s.reports.ExportPDF(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+id+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// waitTimeout bounds how long a request may hold the connection for its job.
func waitTimeout(seconds *int) time.Duration {
	n := valueOr(seconds, defaultWaitSeconds)
	switch {
	case n <= 0:
		n = defaultWaitSeconds
	case n > maxWaitSeconds:
		n = maxWaitSeconds
	}
	return time.Duration(n) * time.Second
}

func (s *Server) CreateReportJob(w http.ResponseWriter, r *http.Request, params api.CreateReportJobParams) {
	if !s.allowReport(w) {
		return
	}
	var body api.CreateReportJobJSONRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if len(body.Metrics) == 0 {
		writeError(w, r, fmt.Errorf("%w: metrics is required", domain.ErrInvalid))
		return
	}
	id, err := s.jobs.EnqueueReportJob(r.Context(), body.Metrics)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !valueOr(params.Wait, false) {
		writeJSON(w, http.StatusAccepted, api.JobAccepted{JobId: id})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), waitTimeout(params.Timeout))
	defer cancel()
	job, err := s.runJob(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// runJob processes a job inline with the worker logic. When a background
// worker claimed it first, it waits for that worker instead.
func (s *Server) runJob(ctx context.Context, id string) (domain.ReportJob, error) {
	log := logging.FromContext(ctx)
	err := reportrunner.ProcessInline(ctx, s.jobs, s.processor, id, log)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		return s.awaitJob(ctx, id)
	default:
		log.Warn("inline report job failed", zap.String("job_id", id), zap.Error(err))
	}
	return s.jobs.JobStatus(context.WithoutCancel(ctx), id)
}

func (s *Server) awaitJob(ctx context.Context, id string) (domain.ReportJob, error) {
	ticker := time.NewTicker(jobPollInterval)
	defer ticker.Stop()
	for {
		job, err := s.jobs.JobStatus(context.WithoutCancel(ctx), id)
		if err != nil || job.Status == domain.JobCompleted || job.Status == domain.JobFailed {
			return job, err
		}
		select {
		case <-ctx.Done():
			return job, nil
		case <-ticker.C:
		}
	}
}

func (s *Server) GetReportJob(w http.ResponseWriter, r *http.Request, id api.ID) {
	job, err := s.jobs.JobStatus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}
