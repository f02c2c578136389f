package impact

import "impactlens/internal/domain"

// Static datasets behind the impact and sustainability dashboards.

var portfolio = []domain.ImpactCompany{
	{ID: 1, Name: "EcoTech Solutions", Sector: "Clean Energy", Investment: 2500000, CarbonReduction: 1250, RenewableEnergyUsage: 78, DiversityScore: 72, GovernanceScore: 85, OverallScore: 79, Trend: 5.2},
	{ID: 2, Name: "AquaPure Systems", Sector: "Water Management", Investment: 1800000, CarbonReduction: 850, RenewableEnergyUsage: 62, DiversityScore: 68, GovernanceScore: 77, OverallScore: 69, Trend: 3.1},
	{ID: 3, Name: "GreenBuild Inc.", Sector: "Sustainable Construction", Investment: 3200000, CarbonReduction: 2100, RenewableEnergyUsage: 45, DiversityScore: 81, GovernanceScore: 73, OverallScore: 65, Trend: -2.3},
	{ID: 4, Name: "SolarTech Industries", Sector: "Clean Energy", Investment: 4100000, CarbonReduction: 3250, RenewableEnergyUsage: 91, DiversityScore: 65, GovernanceScore: 79, OverallScore: 82, Trend: 7.8},
	{ID: 5, Name: "EcoHarvest Agriculture", Sector: "Sustainable Agriculture", Investment: 1950000, CarbonReduction: 1050, RenewableEnergyUsage: 58, DiversityScore: 75, GovernanceScore: 68, OverallScore: 67, Trend: 1.4},
}

var impactTrend = []domain.ImpactPoint{
	{Month: "Jan", Emissions: 4850, Social: 68, Governance: 71},
	{Month: "Feb", Emissions: 4600, Social: 70, Governance: 72},
	{Month: "Mar", Emissions: 4400, Social: 71, Governance: 73},
	{Month: "Apr", Emissions: 4100, Social: 72, Governance: 75},
	{Month: "May", Emissions: 3850, Social: 74, Governance: 77},
	{Month: "Jun", Emissions: 3500, Social: 75, Governance: 78},
}

const (
	TabSolar   = "solar"
	TabFashion = "fashion"
)

var solarCompanies = []domain.SustainabilityEntity{
	{ID: 1, Name: "SunPower Solutions", Trend: 6.8, Values: map[string]float64{
		"productionCapacity": 250, "co2Avoided": 4250, "resourceEfficiency": 87, "waterSaved": 12500, "communityImpact": 75}},
	{ID: 2, Name: "EcoSolar Industries", Trend: 4.2, Values: map[string]float64{
		"productionCapacity": 180, "co2Avoided": 3150, "resourceEfficiency": 81, "waterSaved": 9200, "communityImpact": 68}},
	{ID: 3, Name: "GreenRay Energy", Trend: 7.5, Values: map[string]float64{
		"productionCapacity": 320, "co2Avoided": 5750, "resourceEfficiency": 92, "waterSaved": 15800, "communityImpact": 82}},
}

var fashionBrands = []domain.SustainabilityEntity{
	{ID: 1, Name: "EcoThreads", Trend: 5.3, Values: map[string]float64{
		"recycledMaterials": 78, "waterSaved": 18500, "carbonFootprint": 65, "wasteReduction": 82, "ethicalScore": 88}},
	{ID: 2, Name: "GreenStitch Apparel", Trend: 3.8, Values: map[string]float64{
		"recycledMaterials": 62, "waterSaved": 15200, "carbonFootprint": 58, "wasteReduction": 71, "ethicalScore": 84}},
	{ID: 3, Name: "Sustainable Couture", Trend: 8.1, Values: map[string]float64{
		"recycledMaterials": 91, "waterSaved": 24700, "carbonFootprint": 76, "wasteReduction": 89, "ethicalScore": 92}},
}

var solarTrend = []map[string]any{
	{"month": "Jan", "production": 210, "co2Avoided": 3600, "waterSaved": 8500},
	{"month": "Feb", "production": 225, "co2Avoided": 3850, "waterSaved": 9100},
	{"month": "Mar", "production": 240, "co2Avoided": 4100, "waterSaved": 9700},
	{"month": "Apr", "production": 255, "co2Avoided": 4350, "waterSaved": 10300},
	{"month": "May", "production": 265, "co2Avoided": 4500, "waterSaved": 10800},
	{"month": "Jun", "production": 280, "co2Avoided": 4750, "waterSaved": 11400},
}

var fashionTrend = []map[string]any{
	{"month": "Jan", "recycledUse": 65, "waterSaved": 14200, "wasteReduction": 68},
	{"month": "Feb", "recycledUse": 68, "waterSaved": 15100, "wasteReduction": 70},
	{"month": "Mar", "recycledUse": 70, "waterSaved": 16300, "wasteReduction": 73},
	{"month": "Apr", "recycledUse": 73, "waterSaved": 17500, "wasteReduction": 75},
	{"month": "May", "recycledUse": 76, "waterSaved": 18700, "wasteReduction": 78},
	{"month": "Jun", "recycledUse": 79, "waterSaved": 19800, "wasteReduction": 81},
}

var fashionMarket = domain.MarketInsights{
	TotalBrands:    428,
	GrowthRate:     32,
	AverageRevenue: 4.2,
	ConsumerPreferences: []domain.ConsumerPreference{
		{Category: "Recycled Materials", Percentage: 68},
		{Category: "Ethical Production", Percentage: 62},
		{Category: "Carbon Neutral", Percentage: 53},
		{Category: "Water Conservation", Percentage: 47},
		{Category: "Waste Reduction", Percentage: 41},
	},
	MarketShare:      12,
	InvestmentGrowth: 45,
	BrandSurvival:    78,
}

// DefaultMetrics is the card configuration a workspace starts with.
func DefaultMetrics() domain.MetricsConfig {
	return domain.MetricsConfig{
		TabSolar: {
			{ID: "production_capacity", Name: "Production Capacity", Key: "productionCapacity", Unit: "MW", Enabled: true},
			{ID: "co2_avoided", Name: "CO2 Emissions Avoided", Key: "co2Avoided", Unit: "tons", Enabled: true},
			{ID: "water_saved", Name: "Water Resources Saved", Key: "waterSaved", Unit: "gallons", Enabled: true},
			{ID: "resource_efficiency", Name: "Resource Efficiency", Key: "resourceEfficiency", Unit: "%", Enabled: true},
			{ID: "community_impact", Name: "Community Impact", Key: "communityImpact", Unit: "score", Enabled: true},
		},
		TabFashion: {
			{ID: "recycled_materials", Name: "Recycled Materials Usage", Key: "recycledMaterials", Unit: "%", Enabled: true},
			{ID: "water_saved", Name: "Water Conservation", Key: "waterSaved", Unit: "gallons", Enabled: true},
			{ID: "carbon_footprint", Name: "Carbon Footprint Reduction", Key: "carbonFootprint", Unit: "%", Enabled: true},
			{ID: "waste_reduction", Name: "Waste Reduction", Key: "wasteReduction", Unit: "%", Enabled: true},
			{ID: "ethical_score", Name: "Ethical Score", Key: "ethicalScore", Unit: "score", Enabled: true},
		},
	}
}
