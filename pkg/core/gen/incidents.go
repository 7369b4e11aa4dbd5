package gen

import (
	"fmt"
	"strings"
)

// Incident latitude/longitude stay inside the continental US.
const (
	minLatitude  = 25.0
	maxLatitude  = 49.0
	minLongitude = -125.0
	maxLongitude = -65.0
)

var severityLevels = []int{1, 2, 3, 4, 5}

var severityWeights = []float64{0.4, 0.3, 0.15, 0.1, 0.05}

var impactDescriptions = map[int]string{
	1: "Minor incident with minimal environmental impact. Quickly contained and remediated.",
	2: "Minor incident affecting a limited area. Required standard cleanup procedures.",
	3: "Moderate incident with localized environmental effects. Required significant remediation.",
	4: "Serious incident with substantial environmental impact. Extended remediation required.",
	5: "Major incident with significant environmental damage. Long-term remediation ongoing.",
}

var countyDirections = []string{"North", "South", "East", "West", "Central", "Upper", "Lower"}

var countyFeatures = []string{"Ridge", "Valley", "Creek", "River", "Lake", "Woods", "Plains", "Hills"}

// incidentVocabulary returns the industry-conditioned incident types and
// weights. Four buckets: Energy; Manufacturing/Chemical; Transportation; other.
func incidentVocabulary(industry string) ([]string, []float64) {
	switch industry {
	case "Energy":
		return []string{"Oil Spill", "Gas Leak", "Emissions Exceedance", "Water Contamination", "Permit Violation"},
			[]float64{0.3, 0.25, 0.2, 0.15, 0.1}
	case "Manufacturing", "Chemical":
		return []string{"Chemical Spill", "Waste Disposal Violation", "Emissions Exceedance", "Water Contamination", "Permit Violation"},
			[]float64{0.3, 0.25, 0.2, 0.15, 0.1}
	case "Transportation":
		return []string{"Fuel Spill", "Emissions Exceedance", "Noise Violation", "Waste Disposal Violation", "Permit Violation"},
			[]float64{0.3, 0.3, 0.2, 0.1, 0.1}
	default:
		return []string{"Waste Disposal Violation", "Permit Violation", "Emissions Exceedance", "Water Usage Violation", "Material Spill"},
			[]float64{0.25, 0.25, 0.2, 0.15, 0.15}
	}
}

// GenerateIncidents expands each company into exactly IncidentCount incident
// records, zero when the count is zero.
func (g *Generator) GenerateIncidents(companies []Company) []Incident {
	s := g.sampler(stageIncidents)
	var incidents []Incident
	for _, c := range companies {
		for i := 0; i < c.IncidentCount; i++ {
			incidents = append(incidents, g.sampleIncident(s, c))
		}
	}
	return incidents
}

func (g *Generator) sampleIncident(s *Sampler, c Company) Incident {
	severity := severityLevels[s.WeightedIndex(severityWeights)]

	types, weights := incidentVocabulary(c.Industry)
	incidentType := types[s.WeightedIndex(weights)]

	// Jitter around the company location, clamped to the continental US.
	latitude := clamp(c.Latitude+s.Normal(0, 0.5), minLatitude, maxLatitude)
	longitude := clamp(c.Longitude+s.Normal(0, 0.5), minLongitude, maxLongitude)

	// Recent incidents are more likely; the modulus caps the lookback at 5 years.
	daysAgo := int(s.Exponential(365)) % 1825
	date := g.Now.AddDate(0, 0, -daysAgo)

	county := fmt.Sprintf("%s %s County", s.Pick(countyDirections), s.Pick(countyFeatures))
	distance := s.LogNormal(1.5, 1.0)

	// More severe incidents are more likely to hit environmental justice
	// communities and less likely to be disclosed promptly.
	inEJ := s.Bool(0.2 + float64(severity)*0.1)
	prompt := s.Bool(0.9 - float64(severity)*0.1)
	var lagDays int
	if prompt {
		lagDays = s.IntRange(0, 5)
	} else {
		lagDays = s.IntRange(5, 90)
	}

	// Severity plus an offset in {-1, 0, 1}, capped at 5. A severity-1
	// incident can rate 0.
	communityImpact := severity + s.IntRange(-1, 2)
	if communityImpact > 5 {
		communityImpact = 5
	}

	cost := float64(severity) * s.Uniform(0.05, 0.2) * incidentSizeMultiplier(c.Size)

	return Incident{
		CompanyID:                       c.ID,
		CompanyName:                     c.Name,
		State:                           c.State,
		Industry:                        c.Industry,
		Type:                            incidentType,
		Severity:                        severity,
		Latitude:                        latitude,
		Longitude:                       longitude,
		Date:                            date,
		Year:                            date.Year(),
		ImpactDescription:               impactDescriptions[severity],
		RemediationCostMillions:         cost,
		County:                          county,
		DistanceToPopulationMiles:       distance,
		InEnvironmentalJusticeCommunity: inEJ,
		PromptDisclosure:                prompt,
		DisclosureLagDays:               lagDays,
		CommunityImpactRating:           communityImpact,
	}
}

func incidentSizeMultiplier(sizeName string) float64 {
	switch {
	case strings.HasPrefix(sizeName, "Very Large"):
		return 4.0
	case strings.HasPrefix(sizeName, "Large"):
		return 2.0
	case strings.HasPrefix(sizeName, "Medium"):
		return 1.0
	default:
		return 0.5
	}
}
