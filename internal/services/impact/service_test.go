package impact

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/adapters/memstore"
	"impactlens/internal/domain"
	"impactlens/internal/store"
)

func TestDashboard(t *testing.T) {
	s := New(memstore.New())

	d, err := s.Dashboard(context.Background(), domain.PortfolioFilter{})
	require.NoError(t, err)
	assert.Len(t, d.Companies, 5)
	assert.True(t, decimal.NewFromInt(13550000).Equal(d.TotalInvestment), d.TotalInvestment.String())
	assert.Equal(t, 8500.0, d.TotalCarbonReduction)
	assert.Equal(t, int64(72), d.AverageESGScore)
	assert.Len(t, d.Trend, 6)

	want := map[string]int64{
		"Clean Energy":             49,
		"Water Management":         13,
		"Sustainable Construction": 24,
		"Sustainable Agriculture":  14,
	}
	require.Len(t, d.Sectors, len(want))
	assert.Equal(t, "Clean Energy", d.Sectors[0].Sector)
	for _, sh := range d.Sectors {
		assert.Equal(t, want[sh.Sector], sh.Percentage, sh.Sector)
	}
}

func TestDashboardFilter(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	d, err := s.Dashboard(ctx, domain.PortfolioFilter{Category: "clean energy"})
	require.NoError(t, err)
	require.Len(t, d.Companies, 2)
	assert.Equal(t, "EcoTech Solutions", d.Companies[0].Name)
	assert.True(t, decimal.NewFromInt(13550000).Equal(d.TotalInvestment))

	d, err = s.Dashboard(ctx, domain.PortfolioFilter{Query: "SUSTAINABLE", Category: "all"})
	require.NoError(t, err)
	assert.Len(t, d.Companies, 2)

	d, err = s.Dashboard(ctx, domain.PortfolioFilter{Query: "aqua", Category: "energy"})
	require.NoError(t, err)
	assert.Empty(t, d.Companies)
}

func TestSustainabilitySolar(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	d, err := s.Sustainability(ctx, "bogus", "")
	require.NoError(t, err)
	assert.Equal(t, TabSolar, d.Tab)
	assert.Len(t, d.Entities, 3)
	assert.Len(t, d.Metrics, 5)
	assert.Equal(t, map[string]float64{"productionCapacity": 750, "co2Avoided": 13150, "waterSaved": 37500}, d.Totals)
	assert.Nil(t, d.Market)
	assert.False(t, d.OnboardingRequired)

	d, err = s.Sustainability(ctx, TabSolar, "green")
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)
	assert.Equal(t, "GreenRay Energy", d.Entities[0].Name)
	assert.Equal(t, 750.0, d.Totals["productionCapacity"], "totals ignore the search")
}

func TestSustainabilityFashion(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	d, err := s.Sustainability(ctx, TabFashion, "")
	require.NoError(t, err)
	assert.True(t, d.OnboardingRequired)
	assert.Nil(t, d.Brand)
	assert.Equal(t, map[string]float64{"recycledMaterials": 77, "waterSaved": 58400, "carbonFootprint": 66}, d.Totals)
	require.NotNil(t, d.Market)
	assert.Equal(t, 428, d.Market.TotalBrands)

	_, err = s.Onboard(ctx, domain.BrandData{BrandInfo: domain.BrandInfo{Name: "Loom & Leaf", Website: "https://www.shop.loomleaf.co.uk/about"}})
	require.NoError(t, err)

	d, err = s.Sustainability(ctx, TabFashion, "")
	require.NoError(t, err)
	assert.False(t, d.OnboardingRequired)
	require.NotNil(t, d.Brand)
	assert.Equal(t, "loomleaf.co.uk", d.Brand.BrandInfo.Domain)
}

func TestMetricsConfigToggle(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	cfg, err := s.MetricsConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultMetrics(), cfg)

	cfg, err = s.ToggleMetric(ctx, TabSolar, "water_saved")
	require.NoError(t, err)
	assert.False(t, cfg[TabSolar][2].Enabled)

	d, err := s.Sustainability(ctx, TabSolar, "")
	require.NoError(t, err)
	assert.Len(t, d.Metrics, 4)
	for _, m := range d.Metrics {
		assert.NotEqual(t, "water_saved", m.ID)
	}

	other, err := s.MetricsConfig(store.WithWorkspace(ctx, "other"))
	require.NoError(t, err)
	assert.True(t, other[TabSolar][2].Enabled, "workspaces are isolated")

	cfg, err = s.ToggleMetric(ctx, TabSolar, "water_saved")
	require.NoError(t, err)
	assert.True(t, cfg[TabSolar][2].Enabled)

	_, err = s.ToggleMetric(ctx, "wind", "water_saved")
	assert.ErrorIs(t, err, domain.ErrInvalid)
	_, err = s.ToggleMetric(ctx, TabFashion, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOnboard(t *testing.T) {
	s := New(memstore.New())
	ctx := context.Background()

	st, err := s.OnboardingStatus(ctx)
	require.NoError(t, err)
	assert.False(t, st.Completed)

	_, err = s.Onboard(ctx, domain.BrandData{BrandInfo: domain.BrandInfo{Name: "  "}})
	assert.ErrorIs(t, err, domain.ErrInvalid)

	for _, website := range []string{"ecothreads", "localhost:3000", "eco threads.com"} {
		brand, err := s.Onboard(ctx, domain.BrandData{BrandInfo: domain.BrandInfo{Name: "X", Website: website}})
		require.NoError(t, err, website)
		assert.Equal(t, website, brand.BrandInfo.Website)
		assert.Empty(t, brand.BrandInfo.Domain, website)
	}

	brand, err := s.Onboard(ctx, domain.BrandData{
		BrandInfo: domain.BrandInfo{Name: " EcoWear ", Website: "EcoWear.com"},
		Materials: map[string]float64{"organicCotton": 60},
	})
	require.NoError(t, err)
	assert.Equal(t, "EcoWear", brand.BrandInfo.Name)
	assert.Equal(t, "ecowear.com", brand.BrandInfo.Domain)
	assert.NotNil(t, brand.Emissions.Scope3)
	assert.NotNil(t, brand.DashboardPrefs)

	st, err = s.OnboardingStatus(ctx)
	require.NoError(t, err)
	assert.True(t, st.Completed)
	require.NotNil(t, st.Brand)
	assert.Equal(t, 60.0, st.Brand.Materials["organicCotton"])
}

func TestRegistrableDomain(t *testing.T) {
	cases := map[string]string{
		"example.com":                   "example.com",
		"https://www.example.com/a?b=1": "example.com",
		"shop.brand.co.uk":              "brand.co.uk",
		"HTTP://Blog.Example.ORG.":      "example.org",
	}
	for in, want := range cases {
		got, err := RegistrableDomain(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := RegistrableDomain("://")
	assert.Error(t, err)
}
