package ports

import (
	"context"
	"encoding/json"

	"impactlens/internal/domain"
)

// Business serves the ESG metrics dashboard.
type Business interface {
	Onboard(ctx context.Context, form domain.OnboardingForm) (domain.MetricSnapshot, error)
	Snapshot(ctx context.Context) (domain.MetricSnapshot, error)
	UpdateCategory(ctx context.Context, category string, form domain.CategoryForm) (domain.MetricSnapshot, error)
	Dashboard(ctx context.Context, category, query string) (domain.BusinessDashboard, error)
}

// Investor manages investor preferences, investments and the portfolio view.
type Investor interface {
	Preferences(ctx context.Context) (domain.InvestorPreferences, error)
	SavePreferences(ctx context.Context, p domain.InvestorPreferences) (domain.InvestorPreferences, error)
	Investments(ctx context.Context) ([]domain.Investment, error)
	CreateInvestment(ctx context.Context, inv domain.Investment) (domain.Investment, error)
	SaveInvestment(ctx context.Context, id int64, inv domain.Investment) (domain.Investment, error)
	DeleteInvestment(ctx context.Context, id int64) error
	Dashboard(ctx context.Context, f domain.PortfolioFilter) (domain.InvestorDashboard, error)
}

// Impact serves the impact portfolio and sustainability dashboards.
type Impact interface {
	Dashboard(ctx context.Context, f domain.PortfolioFilter) (domain.ImpactDashboard, error)
	Sustainability(ctx context.Context, tab, query string) (domain.SustainabilityDashboard, error)
	MetricsConfig(ctx context.Context) (domain.MetricsConfig, error)
	ToggleMetric(ctx context.Context, tab, metricID string) (domain.MetricsConfig, error)
	Onboard(ctx context.Context, brand domain.BrandData) (domain.BrandData, error)
	OnboardingStatus(ctx context.Context) (domain.OnboardingStatus, error)
	CheckoutPreview(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutPreview, error)
}

// Reports generates, saves and exports report content.
type Reports interface {
	Generate(ctx context.Context, metrics json.RawMessage) (string, error)
	Save(ctx context.Context, content string) (domain.Report, error)
	Get(ctx context.Context, id string) (domain.Report, error)
	List(ctx context.Context, limit int) ([]domain.Report, error)
	ExportPDF(ctx context.Context, id string) ([]byte, error)
}

// PDFRenderer lays out a report and prints it to PDF.
type PDFRenderer interface {
	RenderReport(ctx context.Context, r domain.Report) ([]byte, error)
}

// ObjectStore archives exported documents.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}
