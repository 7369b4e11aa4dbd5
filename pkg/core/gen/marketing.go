package gen

import (
	"math"
	"strings"
)

// GenerateMarketingClaims produces 2 to 6 distinct public claims per company,
// fewer when the claim vocabulary itself is smaller. Greenwashing risk is the
// unsubstantiated excess of claim intensity.
func (g *Generator) GenerateMarketingClaims(companies []Company) []MarketingClaim {
	s := g.sampler(stageMarketing)
	lo, hi := 2, 7
	if n := len(g.cfg.ClaimTypes); n+1 < hi {
		hi = n + 1
	}
	// A single-entry vocabulary lowers the floor; IntRange panics on an
	// empty range.
	if lo >= hi {
		lo = hi - 1
	}
	var claims []MarketingClaim
	for _, c := range companies {
		numClaims := s.IntRange(lo, hi)
		for _, idx := range s.SubsetIndices(len(g.cfg.ClaimTypes), numClaims) {
			claims = append(claims, g.sampleClaim(s, c, g.cfg.ClaimTypes[idx]))
		}
	}
	return claims
}

func (g *Generator) sampleClaim(s *Sampler, c Company, claimType string) MarketingClaim {
	intensity := clamp(c.MarketingClaimsIntensity*s.Uniform(0.7, 1.3), 0, 100)

	// A claim is substantiated to the degree marketing intensity tracks
	// actual giving; a big gap in either direction erodes substantiation.
	baseSubstantiation := 100 - math.Abs(c.MarketingClaimsIntensity-c.EnvGivingMillions*20)
	substantiation := clamp(baseSubstantiation*s.Uniform(0.7, 1.3), 0, 100)

	numChannels := s.IntRange(1, len(g.cfg.ClaimChannels)+1)
	selected := make([]string, 0, numChannels)
	for _, idx := range s.SubsetIndices(len(g.cfg.ClaimChannels), numChannels) {
		selected = append(selected, g.cfg.ClaimChannels[idx])
	}

	claimDate := g.Now.AddDate(0, 0, -s.IntN(730))

	return MarketingClaim{
		CompanyID:           c.ID,
		CompanyName:         c.Name,
		Industry:            c.Industry,
		ClaimType:           claimType,
		ClaimIntensity:      intensity,
		SubstantiationScore: substantiation,
		Channels:            strings.Join(selected, ", "),
		ClaimDate:           claimDate,
		GreenwashingRisk:    math.Max(0, intensity-substantiation),
	}
}
