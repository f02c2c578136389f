// Package business serves the company ESG metrics dashboard.
package business

import (
	"context"
	"fmt"
	"strings"

	"impactlens/internal/catalog"
	"impactlens/internal/domain"
	"impactlens/internal/ports"
	"impactlens/internal/store"
)

const (
	recRenewables     = "Increase renewable energy investment to meet 40% target"
	recAntiCorruption = "Implement mandatory anti-corruption training for all employees"

	emissionsThreshold      = 10000
	antiCorruptionThreshold = 80
)

// Values the onboarding form does not ask for.
var onboardingDefaults = domain.MetricSnapshot{
	Environmental: domain.Environmental{FinancedEmissions: 2.1, GreenFinancingRatio: 28, ClimateRisk: 18, RenewableEnergy: 42},
	Social:        domain.Social{FinancialInclusion: 18, GenderPayGap: 0.87, TrainingHours: 32},
	Governance:    domain.Governance{BoardDiversity: 35, AntiCorruption: 72},
	ISSB:          domain.ISSB{ComplianceScore: 85},
}

var defaultChart = []domain.ChartPoint{
	{Month: "Jan", Production: 12000, Emissions: 10500},
	{Month: "Feb", Production: 11500, Emissions: 9800},
	{Month: "Mar", Production: 13000, Emissions: 9200},
	{Month: "Apr", Production: 12500, Emissions: 8900},
	{Month: "May", Production: 14000, Emissions: 8500},
	{Month: "Jun", Production: 13500, Emissions: 8100},
}

var (
	defaultDiversity = domain.DiversityView{Gender: 42, Ethnicity: 28}
	defaultTraining  = domain.TrainingView{AntiCorruption: 72, Ethics: 85}
)

type Service struct {
	kv  ports.KVStore
	cat *catalog.Catalog
}

var _ ports.Business = (*Service)(nil)

func New(kv ports.KVStore, cat *catalog.Catalog) *Service {
	return &Service{kv: kv, cat: cat}
}

// Onboard replaces the workspace snapshot with the form values plus defaults
// and starts the chart history with the entered month.
func (s *Service) Onboard(ctx context.Context, form domain.OnboardingForm) (domain.MetricSnapshot, error) {
	snap := onboardingDefaults
	snap.Environmental.Production = form.Production.Float()
	snap.Environmental.Emissions = form.Emissions.Float()
	snap.Social.Gender = form.Gender.Float()
	snap.Social.Ethnicity = form.Ethnicity.Float()
	snap.Governance.DataQuality = form.DataQuality.Float()
	snap.Governance.TaxTransparency = form.TaxTransparency.Float()
	snap.ISSB.ClimateVulnerability = form.ClimateVulnerability.Float()

	month := strings.TrimSpace(form.Month)
	if month == "" {
		month = "Jan"
	}
	snap.ChartData = []domain.ChartPoint{{Month: month, Production: snap.Environmental.Production, Emissions: snap.Environmental.Emissions}}

	if err := store.SaveJSON(ctx, s.kv, store.KeyDashboardData, snap); err != nil {
		return domain.MetricSnapshot{}, err
	}
	return snap, nil
}

func (s *Service) Snapshot(ctx context.Context) (domain.MetricSnapshot, error) {
	snap, found, err := store.LoadJSON[domain.MetricSnapshot](ctx, s.kv, store.KeyDashboardData)
	if err != nil {
		return domain.MetricSnapshot{}, err
	}
	if !found {
		return domain.MetricSnapshot{}, fmt.Errorf("dashboard data: %w", domain.ErrNotFound)
	}
	return snap, nil
}

// UpdateCategory applies a per-category form to the stored snapshot. Fields
// left out of the form keep their value.
func (s *Service) UpdateCategory(ctx context.Context, category string, form domain.CategoryForm) (domain.MetricSnapshot, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return snap, err
	}
	switch category {
	case "environmental":
		if form.Month != "" || form.Production != nil || form.Emissions != nil {
			snap.ChartData = append(snap.ChartData, domain.ChartPoint{
				Month:      form.Month,
				Production: numberOr(form.Production, 0),
				Emissions:  numberOr(form.Emissions, 0),
			})
		}
		set(&snap.Environmental.FinancedEmissions, form.FinancedEmissions)
		set(&snap.Environmental.GreenFinancingRatio, form.GreenFinancingRatio)
		set(&snap.Environmental.ClimateRisk, form.ClimateRisk)
		set(&snap.Environmental.RenewableEnergy, form.RenewableEnergy)
	case "social":
		set(&snap.Social.Gender, form.Gender)
		set(&snap.Social.Ethnicity, form.Ethnicity)
	case "governance":
		set(&snap.Governance.DataQuality, form.DataQuality)
		set(&snap.Governance.TaxTransparency, form.TaxTransparency)
	case "issb":
		set(&snap.ISSB.ClimateVulnerability, form.ClimateVulnerability)
	default:
		return snap, fmt.Errorf("%w: unknown category %q", domain.ErrInvalid, category)
	}
	if err := store.SaveJSON(ctx, s.kv, store.KeyDashboardData, snap); err != nil {
		return domain.MetricSnapshot{}, err
	}
	return snap, nil
}

func set(dst *float64, v *domain.Number) {
	if v != nil {
		*dst = v.Float()
	}
}

func numberOr(v *domain.Number, def float64) float64 {
	if v == nil {
		return def
	}
	return v.Float()
}

// Dashboard renders a category (overview when unknown) with metrics whose
// name contains query, case-insensitively.
func (s *Service) Dashboard(ctx context.Context, category, query string) (domain.BusinessDashboard, error) {
	snap, found, err := store.LoadJSON[domain.MetricSnapshot](ctx, s.kv, store.KeyDashboardData)
	if err != nil {
		return domain.BusinessDashboard{}, err
	}
	names, ok := s.cat.Category(category)
	if !ok {
		category = "overview"
		names, _ = s.cat.Category(category)
	}

	d := domain.BusinessDashboard{
		OnboardingComplete: found,
		Category:           category,
		Categories:         s.cat.CategoryIDs(),
		Metrics:            []domain.MetricView{},
		Chart:              defaultChart,
		Diversity:          defaultDiversity,
		Training:           defaultTraining,
	}
	var snapPtr *domain.MetricSnapshot
	if found {
		snapPtr = &snap
		d.Snapshot = snapPtr
		if len(snap.ChartData) > 0 {
			d.Chart = snap.ChartData
		}
		if snap.Social.Gender != 0 {
			d.Diversity.Gender = snap.Social.Gender
		}
		if snap.Social.Ethnicity != 0 {
			d.Diversity.Ethnicity = snap.Social.Ethnicity
		}
		if snap.Governance.AntiCorruption != 0 {
			d.Training.AntiCorruption = snap.Governance.AntiCorruption
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for _, name := range names {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		d.Metrics = append(d.Metrics, s.metricView(name, snapPtr))
	}
	d.Recommendations = recommendations(d.Chart, d.Training)
	return d, nil
}

func (s *Service) metricView(name string, snap *domain.MetricSnapshot) domain.MetricView {
	detail, ok := s.cat.Metric(name)
	if !ok {
		return domain.MetricView{Name: name, Standard: "N/A", Source: "N/A", Description: "N/A", CurrentValue: "N/A", Target: "N/A"}
	}
	return domain.MetricView{
		Name:         name,
		Standard:     detail.Standard,
		Source:       detail.Source,
		Description:  detail.Description,
		CurrentValue: detail.CurrentValue(snap),
		Target:       detail.Target,
	}
}

func recommendations(chart []domain.ChartPoint, training domain.TrainingView) []string {
	recs := []string{}
	if len(chart) > 0 && chart[0].Emissions > emissionsThreshold {
		recs = append(recs, recRenewables)
	}
	if training.AntiCorruption < antiCorruptionThreshold {
		recs = append(recs, recAntiCorruption)
	}
	return recs
}
