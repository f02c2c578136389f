package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/adapters/memstore"
	"impactlens/internal/catalog"
	"impactlens/internal/domain"
	"impactlens/internal/services/investor"
	"impactlens/internal/store"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	a, b := NewGenerator(42, cat), NewGenerator(42, cat)

	pa, pb := a.Preferences(), b.Preferences()
	assert.Equal(t, pa, pb)
	assert.Equal(t, a.Investment(0, pa), b.Investment(0, pb))
}

func TestGeneratedRecordsAreValid(t *testing.T) {
	g := NewGenerator(7, catalog.Default())
	prefs := g.Preferences()
	require.NoError(t, domain.Validate(prefs))
	assert.Len(t, prefs.SelectedSDGs, 2)
	assert.NotEqual(t, prefs.SelectedSDGs[0], prefs.SelectedSDGs[1])

	for i := 0; i < 20; i++ {
		inv := g.Investment(i, prefs)
		require.NoError(t, domain.Validate(inv))
		assert.Contains(t, inv.SDGs, prefs.SelectedSDGs[i%2])
		assert.Positive(t, domain.ParseLeadingFloat(inv.InvestmentAmount))
		require.Len(t, inv.ImpactMetrics, 1)
		assert.NotEmpty(t, inv.ImpactMetrics[0].Unit)
	}
}

func TestInvestor(t *testing.T) {
	mem := memstore.New()
	cat := catalog.Default()
	svc := investor.New(mem, cat)
	ctx := store.WithWorkspace(context.Background(), "demo")

	res, err := Investor(ctx, svc, NewGenerator(1, cat), 5)
	require.NoError(t, err)
	assert.Len(t, res.Investments, 5)

	list, err := svc.Investments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)

	d, err := svc.Dashboard(ctx, domain.PortfolioFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, d.PortfolioSize)
	assert.NotEmpty(t, d.Companies, "every seeded investment shares an SDG with the preferences")

	_, err = svc.Investments(context.Background())
	assert.ErrorIs(t, err, domain.ErrSetupRequired, "other workspaces stay empty")
}
