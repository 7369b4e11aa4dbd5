// Package score ranks a company population (generated or uploaded) with the
// percentile-based leadership composite used by the dashboard's
// leaders-and-laggards view.
package score

import (
	"sort"

	"seed_analytics/pkg/core/gen"
)

// Points available per factor. Giving dominates, then transparency, then
// low impact, then a clean incident record.
const (
	baseScore          = 50.0
	givingPoints       = 40.0
	transparencyWeight = 0.3
	impactPoints       = 20.0
	incidentPoints     = 10.0
)

// reportingLevelPoints is the transparency fallback when a population carries
// only categorical reporting levels.
var reportingLevelPoints = map[string]float64{
	"Minimal":       6,
	"Basic":         12,
	"Standard":      18,
	"Detailed":      24,
	"Comprehensive": 30,
}

// RankedCompany is one company with its leadership-score decomposition.
type RankedCompany struct {
	gen.Company

	LeaderScore         float64 `json:"leader_score"`
	GivingScore         float64 `json:"giving_score"`
	TransparencyPoints  float64 `json:"transparency_score_norm"`
	ImpactScoreNorm     float64 `json:"impact_score_norm"`
	IncidentScoreNorm   float64 `json:"incident_score_norm"`
	PerformanceCategory string  `json:"performance_category"`
}

// RankCompanies computes the leadership score for every company and returns
// the population sorted by score descending. Percentile ranks are recomputed
// over whatever population is passed in, so filtering and re-ranking is the
// caller's prerogative.
func RankCompanies(companies []gen.Company) []RankedCompany {
	n := len(companies)
	if n == 0 {
		return nil
	}

	// Giving is normalized by revenue where available, absolute otherwise.
	givingMetric := make([]float64, n)
	for i, c := range companies {
		if c.RevenueMillions > 0 {
			givingMetric[i] = c.EnvGivingMillions / c.RevenueMillions * 100
		} else {
			givingMetric[i] = c.EnvGivingMillions
		}
	}
	givingRanks := percentileRanks(givingMetric)

	impactMetric := make([]float64, n)
	incidentMetric := make([]float64, n)
	for i, c := range companies {
		impactMetric[i] = c.EnvironmentalImpactScore
		incidentMetric[i] = float64(c.IncidentCount)
	}
	impactRanks := percentileRanks(impactMetric)
	incidentRanks := percentileRanks(incidentMetric)

	ranked := make([]RankedCompany, n)
	for i, c := range companies {
		rc := RankedCompany{Company: c}
		rc.GivingScore = givingRanks[i] * givingPoints
		rc.TransparencyPoints = transparencyFactor(c)
		rc.ImpactScoreNorm = (1 - impactRanks[i]) * impactPoints
		rc.IncidentScoreNorm = (1 - incidentRanks[i]) * incidentPoints
		rc.LeaderScore = baseScore + rc.GivingScore + rc.TransparencyPoints + rc.ImpactScoreNorm + rc.IncidentScoreNorm
		rc.PerformanceCategory = categoryFor(rc.LeaderScore)
		ranked[i] = rc
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LeaderScore > ranked[j].LeaderScore
	})
	return ranked
}

// Leaders returns the top n ranked companies.
func Leaders(ranked []RankedCompany, n int) []RankedCompany {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Laggards returns the bottom n ranked companies, worst first.
func Laggards(ranked []RankedCompany, n int) []RankedCompany {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]RankedCompany, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[len(ranked)-1-i]
	}
	return out
}

func transparencyFactor(c gen.Company) float64 {
	if c.TransparencyScore > 0 {
		return c.TransparencyScore * transparencyWeight
	}
	return reportingLevelPoints[c.ReportingLevel]
}

func categoryFor(score float64) string {
	switch {
	case score <= 40:
		return "Laggard"
	case score <= 60:
		return "Below Average"
	case score <= 80:
		return "Above Average"
	default:
		return "Leader"
	}
}

// percentileRanks returns each value's percentile rank in (0,1], ties
// resolved by mean rank, matching a pandas rank(pct=True).
func percentileRanks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Positions i..j hold 1-based ranks i+1..j+1; ties share the mean.
		mean := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = mean / float64(n)
		}
		i = j + 1
	}
	return ranks
}
