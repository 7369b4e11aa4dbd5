package gen

import "sort"

// StateAggregate is one state's rollup of the company population. Derived
// ratio fields are pointers: nil means the divisor was degenerate and the
// metric is not computed, which downstream charts render as missing rather
// than NaN or infinity.
type StateAggregate struct {
	State     string `json:"state"`
	StateName string `json:"state_name"`
	StateAbbr string `json:"state_abbr"`
	Region    string `json:"region"`

	NumCompanies           int     `json:"num_companies"`
	EnvGivingMillions      float64 `json:"env_giving_millions"`
	LocalGivingMillions    float64 `json:"local_giving_millions"`
	NationalGivingMillions float64 `json:"national_giving_millions"`
	RevenueMillions        float64 `json:"revenue_millions"`
	AvgTransparencyScore   float64 `json:"avg_transparency_score"`
	AvgEnvironmentalImpact float64 `json:"avg_environmental_impact"`
	IncidentCount          int     `json:"incident_count"`
	AvgESGScore            float64 `json:"avg_esg_score"`

	AvgGivingPerCompany *float64 `json:"avg_giving_per_company"`
	LocalGivingPct      *float64 `json:"local_giving_pct"`
	GivingPctOfRevenue  *float64 `json:"giving_pct_of_revenue"`
	IncidentDensity     *float64 `json:"incident_density"`
	GivingToImpactRatio *float64 `json:"giving_to_impact_ratio"`

	EJIncidentCount int      `json:"ej_incident_count"`
	EJIncidentPct   *float64 `json:"ej_incident_pct"`
}

func floatPtr(f float64) *float64 { return &f }

// AggregateByGeography rolls the population up to one row per distinct state,
// joined left against the incident table for environmental-justice counts
// (states with no incidents get 0, not null). It is pure: recompute it
// whenever the population changes. A nil or empty incidents slice skips the
// EJ join inputs but still zero-fills the EJ fields.
func AggregateByGeography(companies []Company, incidents []Incident) []StateAggregate {
	grouped := map[string]*StateAggregate{}
	transparencySums := map[string]float64{}
	impactSums := map[string]float64{}
	esgSums := map[string]float64{}

	for _, c := range companies {
		agg, ok := grouped[c.State]
		if !ok {
			agg = &StateAggregate{
				State:     c.State,
				StateName: c.StateName,
				StateAbbr: c.State,
				Region:    c.Region,
			}
			grouped[c.State] = agg
		}
		agg.NumCompanies++
		agg.EnvGivingMillions += c.EnvGivingMillions
		agg.LocalGivingMillions += c.LocalGivingMillions
		agg.NationalGivingMillions += c.NationalGivingMillions
		agg.RevenueMillions += c.RevenueMillions
		agg.IncidentCount += c.IncidentCount
		transparencySums[c.State] += c.TransparencyScore
		impactSums[c.State] += c.EnvironmentalImpactScore
		esgSums[c.State] += c.ESGScore
	}

	ejCounts := map[string]int{}
	for _, inc := range incidents {
		if inc.InEnvironmentalJusticeCommunity {
			ejCounts[inc.State]++
		}
	}

	states := make([]string, 0, len(grouped))
	for state := range grouped {
		states = append(states, state)
	}
	sort.Strings(states)

	aggregates := make([]StateAggregate, 0, len(states))
	for _, state := range states {
		agg := grouped[state]
		n := float64(agg.NumCompanies)

		if agg.NumCompanies > 0 {
			agg.AvgTransparencyScore = transparencySums[state] / n
			agg.AvgEnvironmentalImpact = impactSums[state] / n
			agg.AvgESGScore = esgSums[state] / n
			agg.AvgGivingPerCompany = floatPtr(agg.EnvGivingMillions / n)
			agg.IncidentDensity = floatPtr(float64(agg.IncidentCount) / n)
		}
		if agg.EnvGivingMillions > 0 {
			agg.LocalGivingPct = floatPtr(agg.LocalGivingMillions / agg.EnvGivingMillions * 100)
		}
		if agg.RevenueMillions > 0 {
			agg.GivingPctOfRevenue = floatPtr(agg.EnvGivingMillions / agg.RevenueMillions * 100)
		}
		if denom := agg.AvgEnvironmentalImpact * n / 100; denom > 0 {
			agg.GivingToImpactRatio = floatPtr(agg.EnvGivingMillions / denom)
		}

		agg.EJIncidentCount = ejCounts[state]
		if agg.IncidentCount > 0 {
			agg.EJIncidentPct = floatPtr(float64(agg.EJIncidentCount) / float64(agg.IncidentCount) * 100)
		}

		aggregates = append(aggregates, *agg)
	}
	return aggregates
}
