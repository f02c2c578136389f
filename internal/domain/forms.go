package domain

// OnboardingForm is the initial business metrics form.
type OnboardingForm struct {
	Month                string `json:"month"`
	Production           Number `json:"production"`
	Emissions            Number `json:"emissions"`
	Gender               Number `json:"gender"`
	Ethnicity            Number `json:"ethnicity"`
	DataQuality          Number `json:"dataQuality"`
	TaxTransparency      Number `json:"taxTransparency"`
	ClimateVulnerability Number `json:"climateVulnerability"`
}

// CategoryForm carries a per-category update. Nil fields keep their value.
type CategoryForm struct {
	Month               string  `json:"month"`
	Production          *Number `json:"production"`
	Emissions           *Number `json:"emissions"`
	FinancedEmissions   *Number `json:"financedEmissions"`
	GreenFinancingRatio *Number `json:"greenFinancingRatio"`
	ClimateRisk         *Number `json:"climateRisk"`
	RenewableEnergy     *Number `json:"renewableEnergy"`

	Gender    *Number `json:"gender"`
	Ethnicity *Number `json:"ethnicity"`

	DataQuality     *Number `json:"dataQuality"`
	TaxTransparency *Number `json:"taxTransparency"`

	ClimateVulnerability *Number `json:"climateVulnerability"`
}
