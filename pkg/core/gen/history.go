package gen

const historyStartYear = 2020

// Annual rates for the reconstructed series. Each year's value is the current
// value scaled by 1 - rate*(year-2019), plus noise.
const (
	transparencyDecay = 0.05
	givingDecay       = 0.07
	revenueDecay      = 0.04
	impactDecay       = 0.02
)

// GenerateHistory reconstructs the transparency, giving and impact series
// backward from each company's current values, one row per company per year
// in [2020, current year], plus industry-level yearly rollups.
func (g *Generator) GenerateHistory(companies []Company) *History {
	s := g.sampler(stageHistory)
	currentYear := g.Now.Year()

	h := &History{}
	for _, c := range companies {
		for year := historyStartYear; year <= currentYear; year++ {
			yearsBack := float64(year - 2019)

			score := clamp(c.TransparencyScore*(1-transparencyDecay*yearsBack)+s.Normal(0, 5), 0, 100)
			h.Transparency = append(h.Transparency, TransparencyRecord{
				CompanyID:         c.ID,
				CompanyName:       c.Name,
				Industry:          c.Industry,
				Year:              year,
				TransparencyScore: score,
				ReportingLevel:    ReportingLevelFor(score),
			})

			giving := c.EnvGivingMillions * (1 - givingDecay*yearsBack) * s.Uniform(0.9, 1.1)
			revenue := c.RevenueMillions * (1 - revenueDecay*yearsBack) * s.Uniform(0.95, 1.05)
			givingPct := 0.0
			if revenue > 0 {
				givingPct = giving / revenue * 100
			}
			h.Giving = append(h.Giving, GivingRecord{
				CompanyID:         c.ID,
				CompanyName:       c.Name,
				Industry:          c.Industry,
				Year:              year,
				EnvGivingMillions: giving,
				RevenueMillions:   revenue,
				EnvGivingPct:      givingPct,
			})

			yearFactor := 1 - impactDecay*yearsBack
			h.Impact = append(h.Impact, ImpactRecord{
				CompanyID:                      c.ID,
				CompanyName:                    c.Name,
				Industry:                       c.Industry,
				Year:                           year,
				EnvironmentalImpactScore:       c.EnvironmentalImpactScore * yearFactor * s.Uniform(0.95, 1.05),
				EmissionsTons:                  c.EmissionsTons * yearFactor * s.Uniform(0.9, 1.1),
				EnvRemediationExpensesMillions: c.EnvRemediationExpensesMillions * yearFactor * s.Uniform(0.85, 1.15),
			})
		}
	}

	h.IndustryYearlyTransparency = rollupTransparency(h.Transparency)
	h.IndustryYearlyGiving = rollupGiving(h.Giving)
	h.IndustryYearlyImpact = rollupImpact(h.Impact)
	return h
}

type industryYearKey struct {
	industry string
	year     int
}

// rollupTransparency averages transparency score per industry per year.
func rollupTransparency(records []TransparencyRecord) []IndustryYearStat {
	sums := map[industryYearKey]float64{}
	counts := map[industryYearKey]int{}
	var order []industryYearKey
	for _, r := range records {
		k := industryYearKey{r.Industry, r.Year}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += r.TransparencyScore
		counts[k]++
	}
	stats := make([]IndustryYearStat, 0, len(order))
	for _, k := range order {
		stats = append(stats, IndustryYearStat{Industry: k.industry, Year: k.year, Value: sums[k] / float64(counts[k])})
	}
	return stats
}

// rollupGiving sums giving per industry per year.
func rollupGiving(records []GivingRecord) []IndustryYearStat {
	sums := map[industryYearKey]float64{}
	var order []industryYearKey
	for _, r := range records {
		k := industryYearKey{r.Industry, r.Year}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += r.EnvGivingMillions
	}
	stats := make([]IndustryYearStat, 0, len(order))
	for _, k := range order {
		stats = append(stats, IndustryYearStat{Industry: k.industry, Year: k.year, Value: sums[k]})
	}
	return stats
}

// rollupImpact averages impact score per industry per year.
func rollupImpact(records []ImpactRecord) []IndustryYearStat {
	sums := map[industryYearKey]float64{}
	counts := map[industryYearKey]int{}
	var order []industryYearKey
	for _, r := range records {
		k := industryYearKey{r.Industry, r.Year}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += r.EnvironmentalImpactScore
		counts[k]++
	}
	stats := make([]IndustryYearStat, 0, len(order))
	for _, k := range order {
		stats = append(stats, IndustryYearStat{Industry: k.industry, Year: k.year, Value: sums[k] / float64(counts[k])})
	}
	return stats
}
