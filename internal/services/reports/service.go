// Package reports generates ESG report text through the completion API and
// keeps saved reports.
package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"impactlens/internal/domain"
	"impactlens/internal/llm"
	"impactlens/internal/logging"
	"impactlens/internal/ports"
	"impactlens/internal/telemetry"
)

const defaultListLimit = 50

type Service struct {
	llm      llm.Client
	repo     ports.ReportRepository
	cache    ports.ReportCache
	renderer ports.PDFRenderer
	objects  ports.ObjectStore
	metrics  *telemetry.Metrics
	group    singleflight.Group
	now      func() time.Time
}

var _ ports.Reports = (*Service)(nil)

type Option func(*Service)

func WithCache(c ports.ReportCache) Option { return func(s *Service) { s.cache = c } }
func WithRenderer(r ports.PDFRenderer) Option { return func(s *Service) { s.renderer = r } }
func WithObjectStore(o ports.ObjectStore) Option { return func(s *Service) { s.objects = o } }
func WithMetrics(m *telemetry.Metrics) Option { return func(s *Service) { s.metrics = m } }

func New(client llm.Client, repo ports.ReportRepository, opts ...Option) *Service {
	s := &Service{llm: client, repo: repo, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Generate asks the completion API for a report on metrics. Identical
// requests in flight share one upstream call, and finished ones are served
// from the cache when one is configured.
func (s *Service) Generate(ctx context.Context, metrics json.RawMessage) (string, error) {
	user := userPrompt(metrics)
	key := cacheKey(s.llm.Model(), systemPrompt, user)
	log := logging.FromContext(ctx)

	if s.cache != nil {
		if text, ok := s.cache.Get(ctx, key); ok {
			s.metrics.CacheResult(true)
			s.metrics.ObserveReport("cached", 0)
			return text, nil
		}
		s.metrics.CacheResult(false)
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		ctx, span := telemetry.StartSpan(ctx, "reports.generate",
			attribute.String("llm.model", s.llm.Model()),
			attribute.Int("prompt.bytes", len(user)))
		start := s.now()
		text, err := s.llm.Complete(ctx, llm.Request{System: systemPrompt, User: user})
		telemetry.EndSpan(span, err)
		if err != nil {
			s.metrics.ObserveReport("error", s.now().Sub(start))
			return "", err
		}
		s.metrics.ObserveReport("ok", s.now().Sub(start))
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, text); err != nil {
				log.Warn("report cache write failed", zap.Error(err))
			}
		}
		return text, nil
	})
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	if shared {
		log.Debug("report generation shared with concurrent request")
	}
	return v.(string), nil
}

func (s *Service) Save(ctx context.Context, content string) (domain.Report, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Report{}, fmt.Errorf("%w: content is required", domain.ErrInvalid)
	}
	return s.repo.SaveReport(ctx, content, nil)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Report, error) {
	return s.repo.GetReport(ctx, id)
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	return s.repo.ListReports(ctx, limit)
}

// ExportPDF prints a saved report. When an object store is configured the
// PDF is archived under reports/{id}.pdf; archive failures are logged only.
func (s *Service) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("%w: pdf export", domain.ErrUnavailable)
	}
	r, err := s.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	ctx, span := telemetry.StartSpan(ctx, "reports.export_pdf", attribute.String("report.id", id))
	out, err := s.renderer.RenderReport(ctx, r)
	telemetry.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	if s.objects != nil {
		if err := s.objects.Upload(ctx, "reports/"+r.ID+".pdf", out, "application/pdf"); err != nil {
			logging.FromContext(ctx).Warn("pdf archive failed", zap.String("report_id", r.ID), zap.Error(err))
		}
	}
	return out, nil
}

// Process runs one queued job: generate, then save the report with the
// metrics it was built from.
func (s *Service) Process(ctx context.Context, job ports.ReportJob) (string, error) {
	text, err := s.Generate(ctx, job.Metrics)
	if err != nil {
		return "", err
	}
	r, err := s.repo.SaveReport(ctx, text, job.Metrics)
	if err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return r.ID, nil
}
