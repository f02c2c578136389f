package domain

import (
	"encoding/json"
	"time"
)

// Core records held in the workspace store. JSON field names follow the
// shapes the dashboards persist, so stored blobs stay readable by clients.

type Environmental struct {
	Production          float64 `json:"production"`
	Emissions           float64 `json:"emissions"`
	FinancedEmissions   float64 `json:"financedEmissions"`
	GreenFinancingRatio float64 `json:"greenFinancingRatio"`
	ClimateRisk         float64 `json:"climateRisk"`
	RenewableEnergy     float64 `json:"renewableEnergy"`
}

type Social struct {
	Gender             float64 `json:"gender"`
	Ethnicity          float64 `json:"ethnicity"`
	FinancialInclusion float64 `json:"financialInclusion"`
	GenderPayGap       float64 `json:"genderPayGap"`
	TrainingHours      float64 `json:"trainingHours"`
}

type Governance struct {
	DataQuality     float64 `json:"dataQuality"`
	TaxTransparency float64 `json:"taxTransparency"`
	BoardDiversity  float64 `json:"boardDiversity"`
	AntiCorruption  float64 `json:"antiCorruption"`
}

type ISSB struct {
	ClimateVulnerability float64 `json:"climateVulnerability"`
	ComplianceScore      float64 `json:"complianceScore"`
}

// ChartPoint is one month of production vs emissions.
type ChartPoint struct {
	Month      string  `json:"month"`
	Production float64 `json:"production"`
	Emissions  float64 `json:"emissions"`
}

// MetricSnapshot is the business dashboard blob. Values are stored as entered;
// percentages are not clamped.
type MetricSnapshot struct {
	Environmental Environmental `json:"environmental"`
	Social        Social        `json:"social"`
	Governance    Governance    `json:"governance"`
	ISSB          ISSB          `json:"issb"`
	ChartData     []ChartPoint  `json:"chartData,omitempty"`
}

// Value resolves a dotted field path such as "environmental.emissions".
func (m MetricSnapshot) Value(path string) (float64, bool) {
	switch path {
	case "environmental.production":
		return m.Environmental.Production, true
	case "environmental.emissions":
		return m.Environmental.Emissions, true
	case "environmental.financedEmissions":
		return m.Environmental.FinancedEmissions, true
	case "environmental.greenFinancingRatio":
		return m.Environmental.GreenFinancingRatio, true
	case "environmental.climateRisk":
		return m.Environmental.ClimateRisk, true
	case "environmental.renewableEnergy":
		return m.Environmental.RenewableEnergy, true
	case "social.gender":
		return m.Social.Gender, true
	case "social.ethnicity":
		return m.Social.Ethnicity, true
	case "social.financialInclusion":
		return m.Social.FinancialInclusion, true
	case "social.genderPayGap":
		return m.Social.GenderPayGap, true
	case "social.trainingHours":
		return m.Social.TrainingHours, true
	case "governance.dataQuality":
		return m.Governance.DataQuality, true
	case "governance.taxTransparency":
		return m.Governance.TaxTransparency, true
	case "governance.boardDiversity":
		return m.Governance.BoardDiversity, true
	case "governance.antiCorruption":
		return m.Governance.AntiCorruption, true
	case "issb.climateVulnerability":
		return m.ISSB.ClimateVulnerability, true
	case "issb.complianceScore":
		return m.ISSB.ComplianceScore, true
	}
	return 0, false
}

type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// InvestorPreferences gates the investor dashboards. Its presence is the only
// check; it is not an access control.
type InvestorPreferences struct {
	InvestorName               string        `json:"investorName" validate:"required"`
	Organization               string        `json:"organization"`
	SelectedSDGs               []int         `json:"selectedSDGs" validate:"dive,min=1,max=17"`
	SelectedTopics             []string      `json:"selectedTopics"`
	PreferredFrameworks        []string      `json:"preferredFrameworks"`
	RiskTolerance              RiskTolerance `json:"riskTolerance" validate:"oneof=conservative moderate aggressive"`
	FinancialReturnExpectation string        `json:"financialReturnExpectation" validate:"oneof=below market above"`
	TimeHorizon                string        `json:"timeHorizon" validate:"oneof=short medium long"`
}

// ApplyDefaults fills the enum fields the setup form preselects.
func (p *InvestorPreferences) ApplyDefaults() {
	if p.RiskTolerance == "" {
		p.RiskTolerance = RiskModerate
	}
	if p.FinancialReturnExpectation == "" {
		p.FinancialReturnExpectation = "market"
	}
	if p.TimeHorizon == "" {
		p.TimeHorizon = "long"
	}
	if p.SelectedSDGs == nil {
		p.SelectedSDGs = []int{}
	}
	if p.SelectedTopics == nil {
		p.SelectedTopics = []string{}
	}
	if p.PreferredFrameworks == nil {
		p.PreferredFrameworks = []string{}
	}
}

// ImpactMetric is a free-form id/value/unit triple captured per investment.
type ImpactMetric struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// Investment mirrors the investment form. Amount and expected return keep the
// raw form text and are coerced when the portfolio is computed.
type Investment struct {
	ID               int64          `json:"id"`
	CompanyName      string         `json:"companyName" validate:"required"`
	Sector           string         `json:"sector"`
	Description      string         `json:"description"`
	InvestmentAmount string         `json:"investmentAmount" validate:"required"`
	InvestmentDate   string         `json:"investmentDate" validate:"omitempty,datetime=2006-01-02"`
	SDGs             []int          `json:"sdgs" validate:"dive,min=1,max=17"`
	ImpactTopics     []string       `json:"impactTopics"`
	IrisMetrics      []string       `json:"irisMetrics"`
	ImpactMetrics    []ImpactMetric `json:"impactMetrics,omitempty"`
	ExpectedReturn   string         `json:"expectedReturn"`
	Risk             string         `json:"risk" validate:"omitempty,oneof=low medium high"`
}

func (i *Investment) ApplyDefaults() {
	if i.Risk == "" {
		i.Risk = "medium"
	}
	if i.SDGs == nil {
		i.SDGs = []int{}
	}
	if i.ImpactTopics == nil {
		i.ImpactTopics = []string{}
	}
	if i.IrisMetrics == nil {
		i.IrisMetrics = []string{}
	}
}

type BrandInfo struct {
	Name            string `json:"name" validate:"required"`
	Website         string `json:"website"`
	Domain          string `json:"domain,omitempty"`
	Description     string `json:"description"`
	IndustrySegment string `json:"industrySegment"`
	FoundingYear    string `json:"foundingYear"`
	CompanySize     string `json:"companySize"`
}

type BrandEmissions struct {
	Scope1 map[string]string `json:"scope1"`
	Scope2 map[string]string `json:"scope2"`
	Scope3 map[string]string `json:"scope3"`
}

type BrandSDGs struct {
	Selected []string           `json:"selected"`
	Targets  map[string]float64 `json:"targets"`
}

type BrandDelivery struct {
	Types     map[string]bool   `json:"types"`
	Emissions map[string]string `json:"emissions"`
}

type BrandDataIntegration struct {
	Sources   []string          `json:"sources"`
	Frequency string            `json:"frequency"`
	AutoSync  bool              `json:"autoSync"`
	Endpoints map[string]string `json:"endpoints"`
}

type BrandBenchmarking struct {
	Preferences []string           `json:"preferences"`
	Targets     map[string]float64 `json:"targets"`
}

// BrandData is the sustainable-fashion onboarding blob.
type BrandData struct {
	BrandInfo       BrandInfo            `json:"brandInfo"`
	Emissions       BrandEmissions       `json:"emissions"`
	Materials       map[string]float64   `json:"materials"`
	SDGs            BrandSDGs            `json:"sdgs"`
	Delivery        BrandDelivery        `json:"delivery"`
	DataIntegration BrandDataIntegration `json:"dataIntegration"`
	Benchmarking    BrandBenchmarking    `json:"benchmarking"`
	DashboardPrefs  map[string]bool      `json:"dashboardPrefs"`
}

// Report is generated or user-saved report text.
type Report struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Metrics   json.RawMessage `json:"metrics,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// ReportJob tracks asynchronous report generation.
type ReportJob struct {
	ID         string          `json:"id"`
	Status     JobStatus       `json:"status"`
	Metrics    json.RawMessage `json:"-"`
	ReportID   *string         `json:"reportId,omitempty"`
	Error      string          `json:"error,omitempty"`
	Attempts   int             `json:"attempts"`
	QueuedAt   time.Time       `json:"queuedAt"`
	StartedAt  *time.Time      `json:"startedAt,omitempty"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
}
