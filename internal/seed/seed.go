// Package seed fills a workspace with plausible demo data.
package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"impactlens/internal/catalog"
	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

var sectors = []string{
	"Clean Energy",
	"Water Management",
	"Education",
	"Healthcare",
	"Sustainable Agriculture",
	"Affordable Housing",
}

var units = map[string]string{
	"students_reached":   "students",
	"patients_treated":   "patients",
	"renewable_capacity": "MW",
	"emissions_avoided":  "tons",
	"housing_units":      "units",
	"people_housed":      "people",
	"clean_water_access": "people",
	"farmers_supported":  "farmers",
	"poverty_reduction":  "people",
	"financial_literacy": "people",
}

// Result summarizes what Investor wrote.
type Result struct {
	Preferences domain.InvestorPreferences
	Investments []domain.Investment
}

// Generator builds demo records. The same seed yields the same records.
type Generator struct {
	f   *gofakeit.Faker
	cat *catalog.Catalog
}

func NewGenerator(seed uint64, cat *catalog.Catalog) *Generator {
	return &Generator{f: gofakeit.New(seed), cat: cat}
}

func (g *Generator) Preferences() domain.InvestorPreferences {
	p := domain.InvestorPreferences{
		InvestorName:               g.f.Name(),
		Organization:               g.f.Company(),
		SelectedSDGs:               g.sdgs(2),
		SelectedTopics:             []string{},
		PreferredFrameworks:        []string{g.cat.Frameworks[g.f.IntN(len(g.cat.Frameworks))].ID},
		RiskTolerance:              domain.RiskTolerance(g.f.RandomString([]string{"conservative", "moderate", "aggressive"})),
		FinancialReturnExpectation: g.f.RandomString([]string{"below", "market", "above"}),
		TimeHorizon:                g.f.RandomString([]string{"short", "medium", "long"}),
	}
	return p
}

// Investment returns demo investment number i. Ids are unique per i.
func (g *Generator) Investment(i int, prefs domain.InvestorPreferences) domain.Investment {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	date := g.f.DateRange(start, start.AddDate(2, 0, 0))
	metric := g.cat.ImpactMetrics[g.f.IntN(len(g.cat.ImpactMetrics))]

	sdgs := g.sdgs(1)
	if len(prefs.SelectedSDGs) > 0 {
		// Keep part of the portfolio visible under the preference filter.
		sdgs = append(sdgs, prefs.SelectedSDGs[i%len(prefs.SelectedSDGs)])
	}
	return domain.Investment{
		ID:               date.UnixMilli() + int64(i),
		CompanyName:      g.f.Company(),
		Sector:           g.f.RandomString(sectors),
		Description:      g.f.BS(),
		InvestmentAmount: strconv.Itoa(g.f.IntRange(50, 2000) * 1000),
		InvestmentDate:   date.Format(time.DateOnly),
		SDGs:             sdgs,
		ImpactTopics:     []string{g.cat.Topics[g.f.IntN(len(g.cat.Topics))].ID},
		IrisMetrics:      []string{},
		ImpactMetrics: []domain.ImpactMetric{{
			ID:    metric.ID,
			Value: strconv.Itoa(g.f.IntRange(10, 5000)),
			Unit:  units[metric.ID],
		}},
		ExpectedReturn: strconv.FormatFloat(float64(g.f.IntRange(20, 150))/10, 'f', 1, 64),
		Risk:           g.f.RandomString([]string{"low", "medium", "high"}),
	}
}

func (g *Generator) sdgs(n int) []int {
	out := make([]int, 0, n)
	for len(out) < n {
		id := g.cat.SDGs[g.f.IntN(len(g.cat.SDGs))].ID
		dup := false
		for _, have := range out {
			dup = dup || have == id
		}
		if !dup {
			out = append(out, id)
		}
	}
	return out
}

// Investor writes preferences and n investments through the investor
// service of the workspace carried by ctx.
func Investor(ctx context.Context, svc ports.Investor, g *Generator, n int) (Result, error) {
	prefs, err := svc.SavePreferences(ctx, g.Preferences())
	if err != nil {
		return Result{}, fmt.Errorf("seed preferences: %w", err)
	}
	res := Result{Preferences: prefs}
	for i := 0; i < n; i++ {
		inv := g.Investment(i, prefs)
		saved, err := svc.SaveInvestment(ctx, inv.ID, inv)
		if err != nil {
			return res, fmt.Errorf("seed investment %d: %w", i, err)
		}
		res.Investments = append(res.Investments, saved)
	}
	return res, nil
}
