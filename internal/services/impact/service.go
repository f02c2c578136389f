// Package impact serves the impact portfolio and the sustainability
// dashboards, including the per-workspace metric card configuration and the
// sustainable fashion onboarding.
package impact

import (
	"context"
	"fmt"
	"maps"
	"math"
	"net/url"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"impactlens/internal/domain"
	"impactlens/internal/logging"
	"impactlens/internal/ports"
	"impactlens/internal/store"
)

type Service struct {
	kv ports.KVStore
}

var _ ports.Impact = (*Service)(nil)

func New(kv ports.KVStore) *Service {
	return &Service{kv: kv}
}

var hundred = decimal.NewFromInt(100)

// Dashboard filters the company table. Totals, the average score and the
// sector split always cover the whole portfolio.
func (s *Service) Dashboard(_ context.Context, f domain.PortfolioFilter) (domain.ImpactDashboard, error) {
	d := domain.ImpactDashboard{
		Companies:       []domain.ImpactCompany{},
		TotalInvestment: decimal.Zero,
		Trend:           impactTrend,
	}
	q, category := strings.ToLower(f.Query), strings.ToLower(f.Category)
	var scoreSum float64
	for _, c := range portfolio {
		d.TotalInvestment = d.TotalInvestment.Add(decimal.NewFromFloat(c.Investment))
		d.TotalCarbonReduction += c.CarbonReduction
		scoreSum += c.OverallScore

		name, sector := strings.ToLower(c.Name), strings.ToLower(c.Sector)
		if !strings.Contains(name, q) && !strings.Contains(sector, q) {
			continue
		}
		if category != "" && category != "all" && !strings.Contains(sector, category) {
			continue
		}
		d.Companies = append(d.Companies, c)
	}
	d.AverageESGScore = int64(math.Round(scoreSum / float64(len(portfolio))))
	d.Sectors = sectorShares(d.TotalInvestment)
	return d, nil
}

func sectorShares(total decimal.Decimal) []domain.SectorShare {
	shares := []domain.SectorShare{}
	index := map[string]int{}
	for _, c := range portfolio {
		i, ok := index[c.Sector]
		if !ok {
			i = len(shares)
			index[c.Sector] = i
			shares = append(shares, domain.SectorShare{Sector: c.Sector, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(decimal.NewFromFloat(c.Investment))
	}
	for i := range shares {
		shares[i].Percentage = shares[i].Amount.Div(total).Mul(hundred).Round(0).IntPart()
	}
	return shares
}

// Sustainability renders the solar or fashion tab. Any tab other than
// fashion shows solar.
func (s *Service) Sustainability(ctx context.Context, tab, query string) (domain.SustainabilityDashboard, error) {
	if tab != TabFashion {
		tab = TabSolar
	}
	cfg, err := s.MetricsConfig(ctx)
	if err != nil {
		return domain.SustainabilityDashboard{}, err
	}
	d := domain.SustainabilityDashboard{
		Tab:     tab,
		Metrics: enabled(cfg[tab]),
	}

	var all []domain.SustainabilityEntity
	switch tab {
	case TabFashion:
		all = fashionBrands
		d.Trend = fashionTrend
		market := fashionMarket
		market.ConsumerPreferences = slices.Clone(fashionMarket.ConsumerPreferences)
		d.Market = &market
		d.Totals = map[string]float64{
			"recycledMaterials": math.Round(average(all, "recycledMaterials")),
			"waterSaved":        sum(all, "waterSaved"),
			"carbonFootprint":   math.Round(average(all, "carbonFootprint")),
		}

		status, err := s.OnboardingStatus(ctx)
		if err != nil {
			return d, err
		}
		d.OnboardingRequired = !status.Completed
		d.Brand = status.Brand
	default:
		all = solarCompanies
		d.Trend = solarTrend
		d.Totals = map[string]float64{
			"productionCapacity": sum(all, "productionCapacity"),
			"co2Avoided":         sum(all, "co2Avoided"),
			"waterSaved":         sum(all, "waterSaved"),
		}
	}

	q := strings.ToLower(query)
	d.Entities = []domain.SustainabilityEntity{}
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Name), q) {
			e.Values = maps.Clone(e.Values)
			d.Entities = append(d.Entities, e)
		}
	}
	return d, nil
}

func enabled(metrics []domain.SustainabilityMetric) []domain.SustainabilityMetric {
	out := []domain.SustainabilityMetric{}
	for _, m := range metrics {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}

func sum(entities []domain.SustainabilityEntity, key string) float64 {
	var total float64
	for _, e := range entities {
		total += e.Values[key]
	}
	return total
}

func average(entities []domain.SustainabilityEntity, key string) float64 {
	if len(entities) == 0 {
		return 0
	}
	return sum(entities, key) / float64(len(entities))
}

// MetricsConfig returns the stored card configuration, or the defaults for a
// workspace that never changed it.
func (s *Service) MetricsConfig(ctx context.Context) (domain.MetricsConfig, error) {
	cfg, found, err := store.LoadJSON[domain.MetricsConfig](ctx, s.kv, store.KeySustainabilityMetrics)
	if err != nil {
		return nil, err
	}
	if !found || cfg == nil {
		return DefaultMetrics(), nil
	}
	return cfg, nil
}

// ToggleMetric flips one card of a tab and persists the whole configuration.
func (s *Service) ToggleMetric(ctx context.Context, tab, metricID string) (domain.MetricsConfig, error) {
	cfg, err := s.MetricsConfig(ctx)
	if err != nil {
		return nil, err
	}
	metrics, ok := cfg[tab]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tab %q", domain.ErrInvalid, tab)
	}
	i := slices.IndexFunc(metrics, func(m domain.SustainabilityMetric) bool { return m.ID == metricID })
	if i < 0 {
		return nil, fmt.Errorf("metric %s/%s: %w", tab, metricID, domain.ErrNotFound)
	}
	metrics[i].Enabled = !metrics[i].Enabled
	if err := store.SaveJSON(ctx, s.kv, store.KeySustainabilityMetrics, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Onboard stores the fashion brand profile and marks onboarding complete.
func (s *Service) Onboard(ctx context.Context, brand domain.BrandData) (domain.BrandData, error) {
	brand.BrandInfo.Name = strings.TrimSpace(brand.BrandInfo.Name)
	if err := domain.Validate(brand.BrandInfo); err != nil {
		return brand, err
	}
	brand.BrandInfo.Domain = ""
	if strings.TrimSpace(brand.BrandInfo.Website) != "" {
		// The website is free text; the domain is only derived when it
		// parses.
		d, err := RegistrableDomain(brand.BrandInfo.Website)
		if err != nil {
			logging.FromContext(ctx).Debug("brand website has no registrable domain",
				zap.String("website", brand.BrandInfo.Website), zap.Error(err))
		}
		brand.BrandInfo.Domain = d
	}
	fillBrandDefaults(&brand)

	if err := store.SaveJSON(ctx, s.kv, store.KeyFashionBrandData, brand); err != nil {
		return brand, err
	}
	if err := store.MarkCompleted(ctx, s.kv, store.KeyFashionOnboarding); err != nil {
		return brand, err
	}
	return brand, nil
}

func (s *Service) OnboardingStatus(ctx context.Context) (domain.OnboardingStatus, error) {
	done, err := store.IsCompleted(ctx, s.kv, store.KeyFashionOnboarding)
	if err != nil || !done {
		return domain.OnboardingStatus{}, err
	}
	brand, found, err := store.LoadJSON[domain.BrandData](ctx, s.kv, store.KeyFashionBrandData)
	if err != nil {
		return domain.OnboardingStatus{}, err
	}
	st := domain.OnboardingStatus{Completed: true}
	if found {
		st.Brand = &brand
	}
	return st, nil
}

// RegistrableDomain reduces a website as typed into a form ("www.shop.example.co.uk",
// "https://example.com/about") to its registrable domain.
func RegistrableDomain(website string) (string, error) {
	raw := strings.TrimSpace(website)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: website %q: %v", domain.ErrInvalid, website, err)
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", fmt.Errorf("%w: website %q has no host", domain.ErrInvalid, website)
	}
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("%w: website %q: %v", domain.ErrInvalid, website, err)
	}
	return d, nil
}

func fillBrandDefaults(b *domain.BrandData) {
	if b.Emissions.Scope1 == nil {
		b.Emissions.Scope1 = map[string]string{}
	}
	if b.Emissions.Scope2 == nil {
		b.Emissions.Scope2 = map[string]string{}
	}
	if b.Emissions.Scope3 == nil {
		b.Emissions.Scope3 = map[string]string{}
	}
	if b.Materials == nil {
		b.Materials = map[string]float64{}
	}
	if b.SDGs.Selected == nil {
		b.SDGs.Selected = []string{}
	}
	if b.SDGs.Targets == nil {
		b.SDGs.Targets = map[string]float64{}
	}
	if b.Delivery.Types == nil {
		b.Delivery.Types = map[string]bool{}
	}
	if b.Delivery.Emissions == nil {
		b.Delivery.Emissions = map[string]string{}
	}
	if b.DataIntegration.Sources == nil {
		b.DataIntegration.Sources = []string{}
	}
	if b.DataIntegration.Endpoints == nil {
		b.DataIntegration.Endpoints = map[string]string{}
	}
	if b.Benchmarking.Preferences == nil {
		b.Benchmarking.Preferences = []string{}
	}
	if b.Benchmarking.Targets == nil {
		b.Benchmarking.Targets = map[string]float64{}
	}
	if b.DashboardPrefs == nil {
		b.DashboardPrefs = map[string]bool{}
	}
}
