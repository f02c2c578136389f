package investor

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"impactlens/internal/catalog"
	"impactlens/internal/domain"
)

var financialTrend = []domain.FinancialPoint{
	{Month: "Jan", Value: 12800000, Return: 5.2, Risk: 15.4},
	{Month: "Feb", Value: 13100000, Return: 5.8, Risk: 15.2},
	{Month: "Mar", Value: 12900000, Return: 5.1, Risk: 15.8},
	{Month: "Apr", Value: 13500000, Return: 5.7, Risk: 14.9},
	{Month: "May", Value: 14200000, Return: 6.2, Risk: 14.5},
	{Month: "Jun", Value: 15300000, Return: 7.3, Risk: 14.8},
}

var hundred = decimal.NewFromInt(100)

// toCompany turns a captured investment into a portfolio row. The ESG score
// and trend are placeholders seeded by the investment id, so a given
// investment always shows the same values.
func toCompany(inv domain.Investment) domain.PortfolioCompany {
	amount := decimal.NewFromFloat(domain.ParseLeadingFloat(inv.InvestmentAmount))
	er := domain.ParseLeadingFloat(inv.ExpectedReturn)
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(er).Div(hundred))

	rng := rand.New(rand.NewPCG(uint64(inv.ID), 0x65736773636f7265))
	esg := 65 + rng.IntN(20)
	trend := math.Round((rng.Float64()*10-3)*10) / 10

	return domain.PortfolioCompany{
		ID:            inv.ID,
		Name:          inv.CompanyName,
		Sector:        inv.Sector,
		Investment:    amount,
		CurrentValue:  amount.Mul(growth),
		ROI:           er,
		AnnualReturn:  er / 2,
		Volatility:    volatility(inv.Risk),
		ESGScore:      esg,
		Trend:         trend,
		SDGs:          nonNil(inv.SDGs),
		ImpactTopics:  nonNil(inv.ImpactTopics),
		ImpactMetrics: nonNil(inv.ImpactMetrics),
	}
}

func volatility(risk string) int {
	switch risk {
	case "high":
		return 20
	case "medium":
		return 15
	default:
		return 10
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func buildDashboard(prefs domain.InvestorPreferences, list []domain.Investment, f domain.PortfolioFilter, cat *catalog.Catalog) domain.InvestorDashboard {
	companies := make([]domain.PortfolioCompany, 0, len(list))
	for _, inv := range list {
		companies = append(companies, toCompany(inv))
	}

	d := domain.InvestorDashboard{
		Preferences:       prefs,
		Companies:         []domain.PortfolioCompany{},
		PortfolioSize:     len(companies),
		TotalInvestment:   decimal.Zero,
		TotalCurrentValue: decimal.Zero,
		Trend:             financialTrend,
	}
	weighted := decimal.Zero
	for _, c := range companies {
		d.TotalInvestment = d.TotalInvestment.Add(c.Investment)
		d.TotalCurrentValue = d.TotalCurrentValue.Add(c.CurrentValue)
		weighted = weighted.Add(decimal.NewFromFloat(c.AnnualReturn).Mul(c.CurrentValue))
		if matches(c, f, prefs) {
			d.Companies = append(d.Companies, c)
		}
	}
	if d.TotalInvestment.IsPositive() {
		d.TotalROI = d.TotalCurrentValue.Sub(d.TotalInvestment).Div(d.TotalInvestment).Mul(hundred).InexactFloat64()
	}
	if d.TotalCurrentValue.IsPositive() {
		d.WeightedReturn = weighted.Div(d.TotalCurrentValue).InexactFloat64()
	}
	d.Sectors = sectorShares(companies, d.TotalInvestment)
	d.ImpactTotals = impactTotals(companies, cat)
	return d
}

// matches applies the search box, the category tab and the preference
// filters. Empty preference lists match everything.
func matches(c domain.PortfolioCompany, f domain.PortfolioFilter, prefs domain.InvestorPreferences) bool {
	q := strings.ToLower(f.Query)
	name, sector := strings.ToLower(c.Name), strings.ToLower(c.Sector)
	if !strings.Contains(name, q) && !strings.Contains(sector, q) {
		return false
	}
	if cat := strings.ToLower(f.Category); cat != "" && cat != "all" && !strings.Contains(sector, cat) {
		return false
	}
	if len(prefs.SelectedSDGs) > 0 && !slices.ContainsFunc(c.SDGs, func(id int) bool {
		return slices.Contains(prefs.SelectedSDGs, id)
	}) {
		return false
	}
	if len(prefs.SelectedTopics) > 0 && !slices.ContainsFunc(c.ImpactTopics, func(t string) bool {
		return slices.Contains(prefs.SelectedTopics, t)
	}) {
		return false
	}
	return true
}

// sectorShares groups investment by sector in first-seen order.
func sectorShares(companies []domain.PortfolioCompany, total decimal.Decimal) []domain.SectorShare {
	shares := []domain.SectorShare{}
	index := map[string]int{}
	for _, c := range companies {
		i, ok := index[c.Sector]
		if !ok {
			i = len(shares)
			index[c.Sector] = i
			shares = append(shares, domain.SectorShare{Sector: c.Sector, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(c.Investment)
	}
	if total.IsPositive() {
		for i := range shares {
			shares[i].Percentage = shares[i].Amount.Div(total).Mul(hundred).Round(0).IntPart()
		}
	}
	return shares
}

// impactTotals sums numeric impact metric values per id. The unit is taken
// from the first value seen.
func impactTotals(companies []domain.PortfolioCompany, cat *catalog.Catalog) []domain.ImpactTotal {
	totals := []domain.ImpactTotal{}
	index := map[string]int{}
	for _, c := range companies {
		for _, m := range c.ImpactMetrics {
			if m.Value == "" {
				continue
			}
			v, ok := domain.ParseLeadingFloatOK(m.Value)
			if !ok {
				continue
			}
			i, seen := index[m.ID]
			if !seen {
				i = len(totals)
				index[m.ID] = i
				totals = append(totals, domain.ImpactTotal{ID: m.ID, Name: cat.ImpactMetricName(m.ID), Unit: m.Unit})
			}
			totals[i].Value += v
		}
	}
	return totals
}
