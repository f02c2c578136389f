package domain

import "github.com/shopspring/decimal"

// Read models returned by the dashboard services.

type MetricView struct {
	Name         string `json:"name"`
	Standard     string `json:"standard"`
	Source       string `json:"source"`
	Description  string `json:"description"`
	CurrentValue string `json:"currentValue"`
	Target       string `json:"target"`
}

type DiversityView struct {
	Gender    float64 `json:"gender"`
	Ethnicity float64 `json:"ethnicity"`
}

type TrainingView struct {
	AntiCorruption float64 `json:"antiCorruption"`
	Ethics         float64 `json:"ethics"`
}

type BusinessDashboard struct {
	OnboardingComplete bool            `json:"onboardingComplete"`
	Category           string          `json:"category"`
	Categories         []string        `json:"categories"`
	Metrics            []MetricView    `json:"metrics"`
	Chart              []ChartPoint    `json:"chart"`
	Diversity          DiversityView   `json:"diversity"`
	Training           TrainingView    `json:"training"`
	Recommendations    []string        `json:"recommendations"`
	Snapshot           *MetricSnapshot `json:"snapshot,omitempty"`
}

// PortfolioFilter narrows the company list of a dashboard. Totals are always
// computed over the whole portfolio.
type PortfolioFilter struct {
	Query    string
	Category string
}

type PortfolioCompany struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	Investment    decimal.Decimal `json:"investment"`
	CurrentValue  decimal.Decimal `json:"currentValue"`
	ROI           float64         `json:"roi"`
	AnnualReturn  float64         `json:"annualReturn"`
	Volatility    int             `json:"volatility"`
	ESGScore      int             `json:"esgScore"`
	Trend         float64         `json:"trend"`
	SDGs          []int           `json:"sdgs"`
	ImpactTopics  []string        `json:"impactTopics"`
	ImpactMetrics []ImpactMetric  `json:"impactMetrics"`
}

type SectorShare struct {
	Sector     string          `json:"sector"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

type ImpactTotal struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type FinancialPoint struct {
	Month  string  `json:"month"`
	Value  float64 `json:"value"`
	Return float64 `json:"return"`
	Risk   float64 `json:"risk"`
}

type InvestorDashboard struct {
	Preferences       InvestorPreferences `json:"preferences"`
	Companies         []PortfolioCompany  `json:"companies"`
	PortfolioSize     int                 `json:"portfolioSize"`
	TotalInvestment   decimal.Decimal     `json:"totalInvestment"`
	TotalCurrentValue decimal.Decimal     `json:"totalCurrentValue"`
	TotalROI          float64             `json:"totalRoi"`
	WeightedReturn    float64             `json:"weightedReturn"`
	Sectors           []SectorShare       `json:"sectors"`
	ImpactTotals      []ImpactTotal       `json:"impactTotals"`
	Trend             []FinancialPoint    `json:"trend"`
}

type ImpactCompany struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Sector               string  `json:"sector"`
	Investment           float64 `json:"investment"`
	CarbonReduction      float64 `json:"carbonReduction"`
	RenewableEnergyUsage float64 `json:"renewableEnergyUsage"`
	DiversityScore       float64 `json:"diversityScore"`
	GovernanceScore      float64 `json:"governanceScore"`
	OverallScore         float64 `json:"overallScore"`
	Trend                float64 `json:"trend"`
}

type ImpactPoint struct {
	Month      string  `json:"month"`
	Emissions  float64 `json:"emissions"`
	Social     float64 `json:"social"`
	Governance float64 `json:"governance"`
}

type ImpactDashboard struct {
	Companies            []ImpactCompany `json:"companies"`
	TotalInvestment      decimal.Decimal `json:"totalInvestment"`
	TotalCarbonReduction float64         `json:"totalCarbonReduction"`
	AverageESGScore      int64           `json:"averageEsgScore"`
	Sectors              []SectorShare   `json:"sectors"`
	Trend                []ImpactPoint   `json:"trend"`
}

// SustainabilityMetric is a toggleable dashboard card.
type SustainabilityMetric struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Key     string `json:"key" yaml:"key"`
	Unit    string `json:"unit" yaml:"unit"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// MetricsConfig maps a tab (solar, fashion) to its metric cards.
type MetricsConfig map[string][]SustainabilityMetric

type SustainabilityEntity struct {
	ID     int64              `json:"id"`
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values"`
	Trend  float64            `json:"trend"`
}

type ConsumerPreference struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

type MarketInsights struct {
	TotalBrands         int                  `json:"totalBrands"`
	GrowthRate          float64              `json:"growthRate"`
	AverageRevenue      float64              `json:"averageRevenue"`
	ConsumerPreferences []ConsumerPreference `json:"consumerPreferences"`
	MarketShare         float64              `json:"marketShare"`
	InvestmentGrowth    float64              `json:"investmentGrowth"`
	BrandSurvival       float64              `json:"brandSurvival"`
}

type SustainabilityDashboard struct {
	Tab                string                 `json:"tab"`
	Entities           []SustainabilityEntity `json:"entities"`
	Metrics            []SustainabilityMetric `json:"metrics"`
	Totals             map[string]float64     `json:"totals"`
	Trend              []map[string]any       `json:"trend"`
	Market             *MarketInsights        `json:"market,omitempty"`
	OnboardingRequired bool                   `json:"onboardingRequired"`
	Brand              *BrandData             `json:"brand,omitempty"`
}

type OnboardingStatus struct {
	Completed bool       `json:"completed"`
	Brand     *BrandData `json:"brand,omitempty"`
}

// ImpactSaving compares a conventional product with its sustainable version.
type ImpactSaving struct {
	Conventional float64 `json:"conventional"`
	Sustainable  float64 `json:"sustainable"`
	Saved        float64 `json:"saved"`
}

type CheckoutProduct struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Brand     string             `json:"brand"`
	Price     decimal.Decimal    `json:"price"`
	Materials map[string]float64 `json:"materials"`
	Emissions ImpactSaving       `json:"emissions"`
	Water     ImpactSaving       `json:"water"`
	SDGs      []string           `json:"sdgs"`
}

// DeliveryOption emissions are kg CO2e per order.
type DeliveryOption struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Time      string          `json:"time"`
	Emissions float64         `json:"emissions"`
}

// CheckoutRequest selects what the checkout preview prices. Zero values
// mean one item, standard delivery and no offset.
type CheckoutRequest struct {
	Quantity int
	Delivery string
	Offset   bool
}

type CheckoutPreview struct {
	Product           CheckoutProduct  `json:"product"`
	Quantity          int              `json:"quantity"`
	Delivery          DeliveryOption   `json:"delivery"`
	DeliveryOptions   []DeliveryOption `json:"deliveryOptions"`
	Offset            bool             `json:"offset"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	DeliveryPrice     decimal.Decimal  `json:"deliveryPrice"`
	OffsetPrice       decimal.Decimal  `json:"offsetPrice"`
	Total             decimal.Decimal  `json:"total"`
	EmissionsSaved    float64          `json:"emissionsSaved"`
	WaterSaved        float64          `json:"waterSaved"`
	TreesEquivalent   float64          `json:"treesEquivalent"`
	SavingsPercentage int64            `json:"savingsPercentage"`
}
