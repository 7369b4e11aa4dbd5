package gen

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	g, err := NewGenerator(nil, seed)
	if err != nil {
		t.Fatal(err)
	}
	// Pin the clock so date fields are reproducible.
	g.Now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return g
}

func tierFor(t *testing.T, cfg *Config, name string) SizeTier {
	t.Helper()
	for _, tier := range cfg.SizeTiers {
		if tier.Name == name {
			return tier
		}
	}
	t.Fatalf("no size tier named %q", name)
	return SizeTier{}
}

func TestGenerateCompaniesFieldRanges(t *testing.T) {
	g := testGenerator(t, 42)
	companies := g.GenerateCompanies(500)
	if len(companies) != 500 {
		t.Fatalf("expected 500 companies, got %d", len(companies))
	}

	for _, c := range companies {
		tier := tierFor(t, g.Config(), c.Size)
		if c.RevenueMillions < tier.MinRevenue || c.RevenueMillions > tier.MaxRevenue {
			t.Errorf("company %d revenue %.2f outside tier range [%.0f, %.0f]", c.ID, c.RevenueMillions, tier.MinRevenue, tier.MaxRevenue)
		}
		if c.TransparencyScore < 0 || c.TransparencyScore > 100 {
			t.Errorf("company %d transparency %.2f out of [0,100]", c.ID, c.TransparencyScore)
		}
		if c.EnvironmentalImpactScore < 0 || c.EnvironmentalImpactScore > 100 {
			t.Errorf("company %d impact %.2f out of [0,100]", c.ID, c.EnvironmentalImpactScore)
		}
		if c.ESGScore < 0 || c.ESGScore > 100 {
			t.Errorf("company %d esg %.2f out of [0,100]", c.ID, c.ESGScore)
		}
		for key, score := range c.MetricScores {
			if score < 0 || score > 10 {
				t.Errorf("company %d metric %s = %.2f out of [0,10]", c.ID, key, score)
			}
		}
		if len(c.MetricScores) != 5 {
			t.Errorf("company %d has %d sub-metric scores, want 5", c.ID, len(c.MetricScores))
		}
		if c.IncidentCount < 0 {
			t.Errorf("company %d negative incident count", c.ID)
		}
		if c.Latitude < 25 || c.Latitude > 49 || c.Longitude < -125 || c.Longitude > -65 {
			t.Errorf("company %d location (%.2f, %.2f) outside continental bounds", c.ID, c.Latitude, c.Longitude)
		}
		if c.ReportingLevel != ReportingLevelFor(c.TransparencyScore) {
			t.Errorf("company %d reporting level %q inconsistent with score %.2f", c.ID, c.ReportingLevel, c.TransparencyScore)
		}
	}
}

func TestCauseSplitSumsToGiving(t *testing.T) {
	g := testGenerator(t, 7)
	for _, c := range g.GenerateCompanies(300) {
		var sum float64
		for _, amount := range c.CauseGiving {
			if amount < 0 {
				t.Errorf("company %d negative cause slice %.4f", c.ID, amount)
			}
			sum += amount
		}
		if math.Abs(sum-c.EnvGivingMillions) > 1e-9*math.Max(1, c.EnvGivingMillions) {
			t.Errorf("company %d cause split sums to %.9f, giving is %.9f", c.ID, sum, c.EnvGivingMillions)
		}
		if len(c.CauseGiving) < 1 {
			t.Errorf("company %d supports no causes", c.ID)
		}
	}
}

func TestLocalNationalSplitSumsToGiving(t *testing.T) {
	g := testGenerator(t, 7)
	for _, c := range g.GenerateCompanies(300) {
		sum := c.LocalGivingMillions + c.NationalGivingMillions
		if math.Abs(sum-c.EnvGivingMillions) > 1e-9*math.Max(1, c.EnvGivingMillions) {
			t.Errorf("company %d local+national = %.9f, giving is %.9f", c.ID, sum, c.EnvGivingMillions)
		}
		if c.LocalGivingPct < 0 || c.LocalGivingPct > 100 {
			t.Errorf("company %d local pct %.2f out of [0,100]", c.ID, c.LocalGivingPct)
		}
	}
}

func TestGenerateCompaniesDeterministic(t *testing.T) {
	a := testGenerator(t, 99)
	b := testGenerator(t, 99)

	first := a.GenerateCompanies(500)
	second := b.GenerateCompanies(500)
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs with the same seed must be identical")
	}

	c := testGenerator(t, 100)
	if reflect.DeepEqual(first, c.GenerateCompanies(500)) {
		t.Error("different seeds should diverge")
	}
}

// Size tiers carry a transparency factor (0.5 small vs 0.95 very large), so
// over many samples large companies must report more transparently. This is
// a statistical property, not a per-company assertion.
func TestTransparencyScalesWithSize(t *testing.T) {
	g := testGenerator(t, 1234)
	companies := g.GenerateCompanies(5000)

	var smallSum, smallN, largeSum, largeN float64
	for _, c := range companies {
		switch {
		case strings.HasPrefix(c.Size, "Small"):
			smallSum += c.TransparencyScore
			smallN++
		case strings.HasPrefix(c.Size, "Very Large"):
			largeSum += c.TransparencyScore
			largeN++
		}
	}
	if smallN == 0 || largeN == 0 {
		t.Fatal("sample did not cover both tiers")
	}
	smallMean := smallSum / smallN
	largeMean := largeSum / largeN
	// Expected means ~25 vs ~47.5; require a wide margin, not exact values.
	if largeMean <= smallMean+10 {
		t.Errorf("very large mean transparency %.2f not clearly above small mean %.2f", largeMean, smallMean)
	}
}

// High-impact industries carry a 1.5x giving factor against 0.7x for low
// impact, so the giving percentage should separate by tier over many samples.
func TestGivingPctScalesWithIndustryImpact(t *testing.T) {
	g := testGenerator(t, 4321)
	companies := g.GenerateCompanies(5000)

	impactByIndustry := map[string]string{}
	for _, ind := range g.Config().Industries {
		impactByIndustry[ind.Name] = ind.EnvImpact
	}

	var highSum, highN, lowSum, lowN float64
	for _, c := range companies {
		switch impactByIndustry[c.Industry] {
		case "high":
			highSum += c.EnvGivingPct
			highN++
		case "low":
			lowSum += c.EnvGivingPct
			lowN++
		}
	}
	if highN == 0 || lowN == 0 {
		t.Fatal("sample did not cover both impact tiers")
	}
	if highSum/highN <= lowSum/lowN {
		t.Errorf("high-impact mean giving pct %.4f not above low-impact %.4f", highSum/highN, lowSum/lowN)
	}
}

func TestNumCausesClampsToSmallVocabulary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CauseAreas = cfg.CauseAreas[:2]
	// Only the largest tier, whose range starts at 4 causes.
	for _, tier := range cfg.SizeTiers {
		if strings.HasPrefix(tier.Name, "Very Large") {
			cfg.SizeTiers = []SizeTier{tier}
			break
		}
	}
	if len(cfg.SizeTiers) != 1 {
		t.Fatal("expected a single Very Large tier")
	}

	g, err := NewGenerator(cfg, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, c := range g.GenerateCompanies(50) {
		if len(c.CauseGiving) != 2 {
			t.Errorf("company %d supports %d causes, a 2-entry table allows exactly 2", c.ID, len(c.CauseGiving))
		}
	}
}

func TestCompanyNamesUseVocabulary(t *testing.T) {
	g := testGenerator(t, 5)
	for _, c := range g.GenerateCompanies(50) {
		if c.Name == "" {
			t.Fatalf("company %d has no name", c.ID)
		}
		prefix := strings.SplitN(c.Name, " ", 2)[0]
		found := false
		for _, p := range g.Config().NamePrefixes {
			if p == prefix {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("company name %q does not start with a configured prefix", c.Name)
		}
	}
}

func TestGenerateResultOwnsDerivedTables(t *testing.T) {
	g := testGenerator(t, 11)
	result := g.Generate(200)

	if result.RunID == "" {
		t.Error("run must carry an id")
	}
	if result.Seed != 11 {
		t.Errorf("seed = %d, want 11", result.Seed)
	}
	if len(result.Companies) != 200 {
		t.Fatalf("expected 200 companies, got %d", len(result.Companies))
	}

	var wantIncidents int
	for _, c := range result.Companies {
		wantIncidents += c.IncidentCount
	}
	if len(result.Incidents) != wantIncidents {
		t.Errorf("incident table has %d rows, companies declare %d", len(result.Incidents), wantIncidents)
	}

	total := 0
	for _, agg := range result.Geography {
		total += agg.NumCompanies
	}
	if total != len(result.Companies) {
		t.Errorf("geography companies sum to %d, want %d", total, len(result.Companies))
	}

	if result.History == nil || len(result.History.Transparency) == 0 {
		t.Error("history missing")
	}
	if len(result.Marketing) == 0 {
		t.Error("marketing claims missing")
	}
	if len(result.CauseSummary) == 0 {
		t.Error("cause summary missing")
	}
}
