package investor

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/adapters/memstore"
	"impactlens/internal/catalog"
	"impactlens/internal/domain"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s := New(memstore.New(), catalog.Default())
	s.now = func() time.Time { return time.UnixMilli(1727740800000) }
	return s
}

func setup(t *testing.T, s *Service, prefs domain.InvestorPreferences) {
	t.Helper()
	if prefs.InvestorName == "" {
		prefs.InvestorName = "Avery"
	}
	_, err := s.SavePreferences(context.Background(), prefs)
	require.NoError(t, err)
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	_, err := s.Preferences(ctx)
	assert.ErrorIs(t, err, domain.ErrSetupRequired)

	_, err = s.SavePreferences(ctx, domain.InvestorPreferences{InvestorName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = s.SavePreferences(ctx, domain.InvestorPreferences{InvestorName: "Avery", RiskTolerance: "reckless"})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	saved, err := s.SavePreferences(ctx, domain.InvestorPreferences{InvestorName: "Avery", SelectedSDGs: []int{7}})
	require.NoError(t, err)
	assert.Equal(t, domain.RiskModerate, saved.RiskTolerance)
	assert.Equal(t, "market", saved.FinancialReturnExpectation)
	assert.Equal(t, "long", saved.TimeHorizon)

	got, err := s.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestInvestmentsRequireSetup(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	_, err := s.Investments(ctx)
	assert.ErrorIs(t, err, domain.ErrSetupRequired)
	_, err = s.CreateInvestment(ctx, domain.Investment{CompanyName: "A", InvestmentAmount: "1"})
	assert.ErrorIs(t, err, domain.ErrSetupRequired)
	_, err = s.Dashboard(ctx, domain.PortfolioFilter{})
	assert.ErrorIs(t, err, domain.ErrSetupRequired)
}

func TestInvestmentCRUD(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	setup(t, s, domain.InvestorPreferences{})

	_, err := s.CreateInvestment(ctx, domain.Investment{CompanyName: "NoAmount"})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	created, err := s.CreateInvestment(ctx, domain.Investment{CompanyName: "SunCo", InvestmentAmount: "50000"})
	require.NoError(t, err)
	assert.Equal(t, int64(1727740800000), created.ID)
	assert.Equal(t, "medium", created.Risk)

	_, err = s.CreateInvestment(ctx, domain.Investment{CompanyName: "Dup", InvestmentAmount: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalid, "same millisecond id")

	updated, err := s.SaveInvestment(ctx, created.ID, domain.Investment{CompanyName: "SunCo Ltd", InvestmentAmount: "60000"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	_, err = s.SaveInvestment(ctx, 42, domain.Investment{CompanyName: "WaterWorks", InvestmentAmount: "1000"})
	require.NoError(t, err)

	list, err := s.Investments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SunCo Ltd", list[0].CompanyName)
	assert.Equal(t, int64(42), list[1].ID)

	require.NoError(t, s.DeleteInvestment(ctx, 42))
	assert.ErrorIs(t, s.DeleteInvestment(ctx, 42), domain.ErrNotFound)

	list, err = s.Investments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDashboardTotals(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	setup(t, s, domain.InvestorPreferences{})

	invs := []domain.Investment{
		{ID: 1, CompanyName: "SolarCo", Sector: "Clean Energy", InvestmentAmount: "100000", ExpectedReturn: "10", Risk: "high",
			ImpactMetrics: []domain.ImpactMetric{{ID: "renewable_capacity", Value: "5", Unit: "MW"}, {ID: "custom", Value: "n/a", Unit: "x"}}},
		{ID: 2, CompanyName: "EduFund", Sector: "Education", InvestmentAmount: "$300", ExpectedReturn: "abc", Risk: "low"},
		{ID: 3, CompanyName: "WindCo", Sector: "Clean Energy", InvestmentAmount: "50000", ExpectedReturn: "4",
			ImpactMetrics: []domain.ImpactMetric{{ID: "renewable_capacity", Value: "2.5MW", Unit: "megawatts"}}},
	}
	for _, inv := range invs {
		_, err := s.SaveInvestment(ctx, inv.ID, inv)
		require.NoError(t, err)
	}

	d, err := s.Dashboard(ctx, domain.PortfolioFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, d.PortfolioSize)
	assert.Len(t, d.Companies, 3)
	assert.True(t, decimal.NewFromInt(150000).Equal(d.TotalInvestment), d.TotalInvestment.String())
	assert.True(t, decimal.NewFromInt(162000).Equal(d.TotalCurrentValue), d.TotalCurrentValue.String())
	assert.InDelta(t, 8.0, d.TotalROI, 1e-9)
	// (5*110000 + 2*52000) / 162000
	assert.InDelta(t, 654000.0/162000.0, d.WeightedReturn, 1e-9)

	sol := d.Companies[0]
	assert.Equal(t, 20, sol.Volatility)
	assert.Equal(t, 10.0, sol.ROI)
	assert.Equal(t, 5.0, sol.AnnualReturn)
	assert.GreaterOrEqual(t, sol.ESGScore, 65)
	assert.LessOrEqual(t, sol.ESGScore, 84)
	assert.GreaterOrEqual(t, sol.Trend, -3.0)
	assert.LessOrEqual(t, sol.Trend, 7.0)
	assert.Equal(t, 15, d.Companies[2].Volatility, "risk defaults to medium")
	assert.Equal(t, 10, d.Companies[1].Volatility)
	assert.True(t, d.Companies[1].Investment.IsZero(), "non-numeric amount is zero")

	require.Len(t, d.Sectors, 2)
	assert.Equal(t, "Clean Energy", d.Sectors[0].Sector)
	assert.Equal(t, int64(100), d.Sectors[0].Percentage)
	assert.Equal(t, int64(0), d.Sectors[1].Percentage)

	require.Len(t, d.ImpactTotals, 1)
	assert.Equal(t, domain.ImpactTotal{ID: "renewable_capacity", Name: "Renewable Energy Capacity", Value: 7.5, Unit: "MW"}, d.ImpactTotals[0])
	assert.Len(t, d.Trend, 6)
}

func TestDashboardPlaceholdersAreStable(t *testing.T) {
	a := toCompany(domain.Investment{ID: 1727740800000})
	b := toCompany(domain.Investment{ID: 1727740800000})
	assert.Equal(t, a.ESGScore, b.ESGScore)
	assert.Equal(t, a.Trend, b.Trend)
}

func TestDashboardEmptyPortfolio(t *testing.T) {
	s := newService(t)
	setup(t, s, domain.InvestorPreferences{})
	d, err := s.Dashboard(context.Background(), domain.PortfolioFilter{})
	require.NoError(t, err)
	assert.Zero(t, d.TotalROI)
	assert.Zero(t, d.WeightedReturn)
	assert.Empty(t, d.Companies)
	assert.Empty(t, d.Sectors)
}

func TestDashboardFilters(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	setup(t, s, domain.InvestorPreferences{SelectedSDGs: []int{7}, SelectedTopics: []string{"climate"}})

	for _, inv := range []domain.Investment{
		{ID: 1, CompanyName: "SolarCo", Sector: "Clean Energy", InvestmentAmount: "10", SDGs: []int{7, 13}, ImpactTopics: []string{"climate"}},
		{ID: 2, CompanyName: "SchoolCo", Sector: "Education", InvestmentAmount: "10", SDGs: []int{4}, ImpactTopics: []string{"education"}},
		{ID: 3, CompanyName: "GridCo", Sector: "Clean Energy", InvestmentAmount: "10", SDGs: []int{7}, ImpactTopics: []string{"housing"}},
	} {
		_, err := s.SaveInvestment(ctx, inv.ID, inv)
		require.NoError(t, err)
	}

	d, err := s.Dashboard(ctx, domain.PortfolioFilter{})
	require.NoError(t, err)
	require.Len(t, d.Companies, 1)
	assert.Equal(t, "SolarCo", d.Companies[0].Name)
	assert.True(t, decimal.NewFromInt(30).Equal(d.TotalInvestment), "totals cover the whole portfolio")

	d, err = s.Dashboard(ctx, domain.PortfolioFilter{Query: "school"})
	require.NoError(t, err)
	assert.Empty(t, d.Companies)

	d, err = s.Dashboard(ctx, domain.PortfolioFilter{Category: "energy", Query: "SOLAR"})
	require.NoError(t, err)
	assert.Len(t, d.Companies, 1)
}
