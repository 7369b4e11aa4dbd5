package gen

import (
	"fmt"
	"strings"
	"time"
)

// Stage offsets keep the standalone entry points (GenerateCompanies,
// GenerateIncidents, ...) deterministic on their own while letting Generate
// compose them into one reproducible run.
const (
	stageCompanies = iota
	stageIncidents
	stageHistory
	stageMarketing
)

// Generator produces the synthetic dataset. It is stateless per invocation;
// all randomness flows from Seed and all date fields from Now.
type Generator struct {
	cfg  *Config
	Seed uint64
	Now  time.Time
}

// NewGenerator validates the distribution tables and returns a generator.
// A nil cfg uses the built-in defaults.
func NewGenerator(cfg *Config, seed uint64) (*Generator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, Seed: seed, Now: time.Now()}, nil
}

// Config returns the distribution tables the generator samples from.
func (g *Generator) Config() *Config { return g.cfg }

func (g *Generator) sampler(stage uint64) *Sampler {
	return NewSampler(g.Seed + stage)
}

// GenerateCompanies produces exactly n independent company records. The field
// pipeline is ordered (tiers, revenue, giving, transparency, impact, derived
// impact metrics, incidents, ESG, cause split, local split) because later
// draws condition on earlier ones; reordering it is a behavior change.
func (g *Generator) GenerateCompanies(n int) []Company {
	s := g.sampler(stageCompanies)
	companies := make([]Company, 0, n)
	for i := 0; i < n; i++ {
		companies = append(companies, g.sampleCompany(s, i))
	}
	return companies
}

var streetNames = []string{"Main St", "Park Ave", "Broadway", "Market St", "Oak St", "Washington Ave", "5th Ave", "1st St"}

func (g *Generator) sampleCompany(s *Sampler, id int) Company {
	cfg := g.cfg

	// Stage 1: categorical tiers.
	state := cfg.States[s.WeightedIndex(stateWeights(cfg.States))]
	industry := cfg.Industries[s.WeightedIndex(industryWeights(cfg.Industries))]
	size := cfg.SizeTiers[s.WeightedIndex(sizeWeights(cfg.SizeTiers))]

	// Stage 2: revenue within the tier's declared range.
	revenue := s.Uniform(size.MinRevenue, size.MaxRevenue)

	// Stage 3: giving. High-impact industries give proportionally more,
	// larger companies proportionally less.
	baseGivingPct := s.Uniform(0.01, 0.5)
	givingPct := baseGivingPct * impactGivingFactor(industry.EnvImpact) * sizeGivingFactor(size.Name)
	giving := revenue * givingPct / 100

	name := g.companyName(s, industry)
	address := fmt.Sprintf("%d %s", s.IntRange(100, 9999), s.Pick(streetNames))
	city := "Unknown City"
	if len(state.Cities) > 0 {
		city = s.Pick(state.Cities)
	}

	latitude := clamp(37.0902+s.Normal(0, 3), 25, 49)
	longitude := clamp(-95.7129+s.Normal(0, 5), -125, -65)

	// Stage 4: transparency.
	transparency := clamp(s.Normal(50, 15)*size.TransparencyFactor, 0, 100)
	reportingLevel := ReportingLevelFor(transparency)
	detailLevel := 0
	if reportingLevel == "Detailed" || reportingLevel == "Comprehensive" {
		detailLevel = 1
	}
	metricScores := make(map[string]float64, len(cfg.TransparencyMetrics))
	for _, metric := range cfg.TransparencyMetrics {
		metricScores[metricKey(metric)] = clamp(transparency/10+s.Normal(0, 1), 0, 10)
	}

	// Stage 5: environmental impact and its physical derivatives.
	impactFactor := industryImpactFactor(industry.EnvImpact)
	sizeImpact := sizeImpactFactor(size.Name)
	impact := min(100, s.Gamma(2.0, 10.0)*impactFactor*sizeImpact)

	emissions := impact * 1000 * s.Uniform(0.8, 1.2)
	water := impact * 5000 * s.Uniform(0.7, 1.3)
	waste := impact * 100 * s.Uniform(0.6, 1.4)
	energy := impact * 500 * s.Uniform(0.75, 1.25)

	// Stage 6: risk exposure.
	lossContingencies := impact * 0.5 * s.Uniform(0.6, 1.4)
	remediation := impact * 0.3 * s.Uniform(0.7, 1.3)

	// Stage 7: incident count.
	incidentLambda := max(0.1, impactFactor-1) * sizeImpact * 0.5
	incidentCount := s.Poisson(incidentLambda)

	// Stage 8: ESG as an explicit linear composite so downstream correlation
	// views carry inspectable signal.
	esg := clamp(60+givingPct*10-impact*0.1+transparency*0.2+s.Normal(0, 5), 0, 100)

	// Stage 9: cause-area split. Larger companies support more causes; the
	// Dirichlet weights make the slices positive and sum to the total.
	numCauses := g.numCauses(s, size.Name)
	causeGiving := make(map[string]float64, numCauses)
	weights := s.Dirichlet(numCauses)
	for j, idx := range s.SubsetIndices(len(cfg.CauseAreas), numCauses) {
		causeGiving[cfg.CauseAreas[idx]] = giving * weights[j]
	}

	// Stage 10: local vs national split. Beta(2,3) favors lower local shares.
	localPct := s.Beta(2, 3) * 100
	localGiving := giving * localPct / 100
	nationalGiving := giving - localGiving

	filingDate := g.Now.AddDate(0, 0, -s.IntN(365))
	marketingIntensity := s.Uniform(0, 100)

	return Company{
		ID:        id,
		Name:      name,
		State:     state.Abbr,
		StateName: state.Name,
		Region:    state.Region,
		Industry:  industry.Name,
		SICCode:   industry.SICCode,
		Size:      size.Name,

		RevenueMillions:   revenue,
		EnvGivingMillions: giving,
		EnvGivingPct:      givingPct,

		TransparencyScore: transparency,
		ReportingLevel:    reportingLevel,
		DetailLevel:       detailLevel,
		MetricScores:      metricScores,

		Address:   address,
		City:      city,
		Latitude:  latitude,
		Longitude: longitude,

		EnvironmentalImpactScore:       impact,
		EmissionsTons:                  emissions,
		WaterUsageGallons:              water,
		WasteTons:                      waste,
		EnergyConsumptionMWh:           energy,
		EnvLossContingenciesMillions:   lossContingencies,
		EnvRemediationExpensesMillions: remediation,
		IncidentCount:                  incidentCount,

		ESGScore: esg,

		LocalGivingPct:         localPct,
		LocalGivingMillions:    localGiving,
		NationalGivingMillions: nationalGiving,

		DateOfFiling: filingDate,

		MarketingClaimsIntensity: marketingIntensity,
		MarketingVsGivingGap:     marketingIntensity - givingPct*100,

		CauseGiving: causeGiving,
	}
}

func (g *Generator) companyName(s *Sampler, industry IndustryInfo) string {
	prefix := s.Pick(g.cfg.NamePrefixes)
	suffix := s.Pick(g.cfg.NameSuffixes)
	if len(industry.NameWords) > 0 && s.Bool(0.7) {
		return fmt.Sprintf("%s %s %s", prefix, s.Pick(industry.NameWords), suffix)
	}
	return fmt.Sprintf("%s %s", prefix, suffix)
}

func (g *Generator) numCauses(s *Sampler, sizeName string) int {
	total := len(g.cfg.CauseAreas)
	var lo, hi int
	switch {
	case strings.HasPrefix(sizeName, "Small"):
		lo, hi = 1, 4
	case strings.HasPrefix(sizeName, "Medium"):
		lo, hi = 2, 6
	case strings.HasPrefix(sizeName, "Large"):
		lo, hi = 3, 8
	default:
		lo, hi = 4, total+1
	}
	// A cause table smaller than a tier's range clamps the bounds; IntRange
	// panics on an empty range.
	if hi > total+1 {
		hi = total + 1
	}
	if lo >= hi {
		lo = hi - 1
	}
	return s.IntRange(lo, hi)
}

func stateWeights(states []StateInfo) []float64 {
	w := make([]float64, len(states))
	for i, st := range states {
		w[i] = st.Weight
	}
	return w
}

func industryWeights(industries []IndustryInfo) []float64 {
	w := make([]float64, len(industries))
	for i, ind := range industries {
		w[i] = ind.Weight
	}
	return w
}

func sizeWeights(tiers []SizeTier) []float64 {
	w := make([]float64, len(tiers))
	for i, t := range tiers {
		w[i] = t.Weight
	}
	return w
}

func impactGivingFactor(envImpact string) float64 {
	switch envImpact {
	case "high":
		return 1.5
	case "medium":
		return 1.0
	default:
		return 0.7
	}
}

func sizeGivingFactor(sizeName string) float64 {
	switch {
	case strings.HasPrefix(sizeName, "Small"):
		return 1.2
	case strings.HasPrefix(sizeName, "Medium"):
		return 1.0
	case strings.HasPrefix(sizeName, "Large"):
		return 0.8
	default:
		return 0.6
	}
}

func industryImpactFactor(envImpact string) float64 {
	switch envImpact {
	case "high":
		return 3.0
	case "medium":
		return 1.8
	default:
		return 1.0
	}
}

func sizeImpactFactor(sizeName string) float64 {
	switch {
	case strings.HasPrefix(sizeName, "Small"):
		return 0.7
	case strings.HasPrefix(sizeName, "Medium"):
		return 1.0
	case strings.HasPrefix(sizeName, "Large"):
		return 2.0
	default:
		return 4.0
	}
}

func metricKey(metric string) string {
	return "score_" + strings.ReplaceAll(strings.ToLower(metric), " ", "_")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
