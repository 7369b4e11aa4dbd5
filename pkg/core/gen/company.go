package gen

import "time"

// Company is one simulated corporate entity. Monetary fields are in millions,
// percentage fields on a 0-100 scale; the JSON field names are the schema the
// dashboard frontend keys off and must not change.
type Company struct {
	ID        int    `json:"company_id"`
	Name      string `json:"company_name"`
	State     string `json:"state"`
	StateName string `json:"state_name"`
	Region    string `json:"region"`
	Industry  string `json:"industry"`
	SICCode   string `json:"sic_code"`
	Size      string `json:"size"`

	RevenueMillions   float64 `json:"revenue_millions"`
	EnvGivingMillions float64 `json:"env_giving_millions"`
	EnvGivingPct      float64 `json:"env_giving_pct"`

	TransparencyScore float64            `json:"transparency_score"`
	ReportingLevel    string             `json:"reporting_level"`
	DetailLevel       int                `json:"detail_level"`
	MetricScores      map[string]float64 `json:"metric_scores"`

	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	EnvironmentalImpactScore       float64 `json:"environmental_impact_score"`
	EmissionsTons                  float64 `json:"emissions_tons"`
	WaterUsageGallons              float64 `json:"water_usage_gallons"`
	WasteTons                      float64 `json:"waste_tons"`
	EnergyConsumptionMWh           float64 `json:"energy_consumption_mwh"`
	EnvLossContingenciesMillions   float64 `json:"env_loss_contingencies_millions"`
	EnvRemediationExpensesMillions float64 `json:"env_remediation_expenses_millions"`
	IncidentCount                  int     `json:"incident_count"`

	ESGScore float64 `json:"esg_score"`

	LocalGivingPct         float64 `json:"local_giving_pct"`
	LocalGivingMillions    float64 `json:"local_giving_millions"`
	NationalGivingMillions float64 `json:"national_giving_millions"`

	DateOfFiling time.Time `json:"date_of_filing"`

	MarketingClaimsIntensity float64 `json:"marketing_claims_intensity"`
	MarketingVsGivingGap     float64 `json:"marketing_vs_giving_gap"`

	// CauseGiving maps cause-area name to the slice of EnvGivingMillions
	// allocated to it. Values sum to EnvGivingMillions.
	CauseGiving map[string]float64 `json:"cause_giving"`
}

// Incident is one environmental incident attributed to a company. A company
// with incident_count n produces exactly n of these.
type Incident struct {
	CompanyID                       int       `json:"company_id"`
	CompanyName                     string    `json:"company_name"`
	State                           string    `json:"state"`
	Industry                        string    `json:"industry"`
	Type                            string    `json:"incident_type"`
	Severity                        int       `json:"severity"`
	Latitude                        float64   `json:"latitude"`
	Longitude                       float64   `json:"longitude"`
	Date                            time.Time `json:"date"`
	Year                            int       `json:"year"`
	ImpactDescription               string    `json:"impact_description"`
	RemediationCostMillions         float64   `json:"remediation_cost_millions"`
	County                          string    `json:"county"`
	DistanceToPopulationMiles       float64   `json:"distance_to_population_miles"`
	InEnvironmentalJusticeCommunity bool      `json:"in_environmental_justice_community"`
	PromptDisclosure                bool      `json:"prompt_disclosure"`
	DisclosureLagDays               int       `json:"disclosure_lag_days"`
	CommunityImpactRating           int       `json:"community_impact_rating"`
}

// TransparencyRecord is one company-year of the reconstructed transparency series.
type TransparencyRecord struct {
	CompanyID         int     `json:"company_id"`
	CompanyName       string  `json:"company_name"`
	Industry          string  `json:"industry"`
	Year              int     `json:"year"`
	TransparencyScore float64 `json:"transparency_score"`
	ReportingLevel    string  `json:"reporting_level"`
}

// GivingRecord is one company-year of the reconstructed giving series.
type GivingRecord struct {
	CompanyID         int     `json:"company_id"`
	CompanyName       string  `json:"company_name"`
	Industry          string  `json:"industry"`
	Year              int     `json:"year"`
	EnvGivingMillions float64 `json:"env_giving_millions"`
	RevenueMillions   float64 `json:"revenue_millions"`
	EnvGivingPct      float64 `json:"env_giving_pct"`
}

// ImpactRecord is one company-year of the reconstructed impact series.
type ImpactRecord struct {
	CompanyID                      int     `json:"company_id"`
	CompanyName                    string  `json:"company_name"`
	Industry                       string  `json:"industry"`
	Year                           int     `json:"year"`
	EnvironmentalImpactScore       float64 `json:"environmental_impact_score"`
	EmissionsTons                  float64 `json:"emissions_tons"`
	EnvRemediationExpensesMillions float64 `json:"env_remediation_expenses_millions"`
}

// IndustryYearStat is one industry-year cell of the history rollups.
type IndustryYearStat struct {
	Industry string  `json:"industry"`
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
}

// History bundles the three backward-reconstructed series and their
// industry-level yearly rollups.
type History struct {
	Transparency []TransparencyRecord `json:"transparency_history"`
	Giving       []GivingRecord       `json:"giving_history"`
	Impact       []ImpactRecord       `json:"impact_history"`

	IndustryYearlyTransparency []IndustryYearStat `json:"industry_yearly_transparency"`
	IndustryYearlyGiving       []IndustryYearStat `json:"industry_yearly_giving"`
	IndustryYearlyImpact       []IndustryYearStat `json:"industry_yearly_impact"`
}

// MarketingClaim is one public environmental claim made by a company.
type MarketingClaim struct {
	CompanyID           int       `json:"company_id"`
	CompanyName         string    `json:"company_name"`
	Industry            string    `json:"industry"`
	ClaimType           string    `json:"claim_type"`
	ClaimIntensity      float64   `json:"claim_intensity"`
	SubstantiationScore float64   `json:"substantiation_score"`
	Channels            string    `json:"channels"`
	ClaimDate           time.Time `json:"claim_date"`
	GreenwashingRisk    float64   `json:"greenwashing_risk"`
}
