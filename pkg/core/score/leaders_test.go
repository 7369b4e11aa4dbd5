package score

import (
	"math"
	"testing"
	"time"

	"seed_analytics/pkg/core/gen"
)

func TestPercentileRanks(t *testing.T) {
	ranks := percentileRanks([]float64{10, 20, 30, 40})
	// 1-based ranks 1..4 over n=4: 0.25, 0.5, 0.75, 1.0.
	want := []float64{0.25, 0.5, 0.75, 1.0}
	for i := range want {
		if math.Abs(ranks[i]-want[i]) > 1e-12 {
			t.Errorf("rank[%d] = %.4f, want %.4f", i, ranks[i], want[i])
		}
	}
}

func TestPercentileRanksTiesShareMeanRank(t *testing.T) {
	ranks := percentileRanks([]float64{5, 5, 10})
	// The two 5s hold ranks 1 and 2, mean 1.5, so 1.5/3 = 0.5 each.
	if ranks[0] != 0.5 || ranks[1] != 0.5 {
		t.Errorf("tied ranks = %.4f, %.4f, want 0.5 each", ranks[0], ranks[1])
	}
	if ranks[2] != 1.0 {
		t.Errorf("top rank = %.4f, want 1.0", ranks[2])
	}
}

func TestRankCompaniesHandMath(t *testing.T) {
	companies := []gen.Company{
		// Best giver, most transparent, lowest impact, no incidents.
		{ID: 0, RevenueMillions: 100, EnvGivingMillions: 1.0, TransparencyScore: 80, EnvironmentalImpactScore: 10, IncidentCount: 0},
		// Worst on every factor.
		{ID: 1, RevenueMillions: 100, EnvGivingMillions: 0.1, TransparencyScore: 20, EnvironmentalImpactScore: 90, IncidentCount: 5},
	}
	ranked := RankCompanies(companies)
	if len(ranked) != 2 {
		t.Fatalf("got %d ranked, want 2", len(ranked))
	}
	top := ranked[0]
	if top.ID != 0 {
		t.Fatalf("top company = %d, want 0", top.ID)
	}
	// Over n=2 the best giver ranks 2/2=1.0 and the lowest impact 1/2=0.5.
	// 50 + 1.0*40 + 80*0.3 + (1-0.5)*20 + (1-0.5)*10 = 129.
	wantTop := 50.0 + 1.0*40 + 80*0.3 + (1-0.5)*20 + (1-0.5)*10
	if math.Abs(top.LeaderScore-wantTop) > 1e-9 {
		t.Errorf("top score = %.4f, want %.4f", top.LeaderScore, wantTop)
	}
	if top.PerformanceCategory != "Leader" {
		t.Errorf("top category = %q, want Leader", top.PerformanceCategory)
	}

	bottom := ranked[1]
	// Giving rank 0.5*40 = 20; transparency 20*0.3 = 6; impact rank 1.0 so 0
	// impact points; incident rank 1.0 so 0 incident points. 50+20+6 = 76.
	wantBottom := 50.0 + 0.5*40 + 20*0.3
	if math.Abs(bottom.LeaderScore-wantBottom) > 1e-9 {
		t.Errorf("bottom score = %.4f, want %.4f", bottom.LeaderScore, wantBottom)
	}
	if bottom.PerformanceCategory != "Above Average" {
		t.Errorf("bottom category = %q, want Above Average", bottom.PerformanceCategory)
	}
}

func TestTransparencyFallbackToReportingLevel(t *testing.T) {
	c := gen.Company{ReportingLevel: "Comprehensive"}
	if got := transparencyFactor(c); got != 30 {
		t.Errorf("comprehensive fallback = %.2f, want 30", got)
	}
	c = gen.Company{TransparencyScore: 50, ReportingLevel: "Minimal"}
	if got := transparencyFactor(c); got != 15 {
		t.Errorf("numeric score must win over level: got %.2f, want 15", got)
	}
}

func TestCategoryThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{30, "Laggard"},
		{40, "Laggard"},
		{40.1, "Below Average"},
		{60, "Below Average"},
		{75, "Above Average"},
		{80, "Above Average"},
		{95, "Leader"},
	}
	for _, tc := range cases {
		if got := categoryFor(tc.score); got != tc.want {
			t.Errorf("categoryFor(%.1f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestLeadersAndLaggards(t *testing.T) {
	companies := make([]gen.Company, 10)
	for i := range companies {
		companies[i] = gen.Company{
			ID:                       i,
			RevenueMillions:          100,
			EnvGivingMillions:        float64(i),
			TransparencyScore:        float64(i * 10),
			EnvironmentalImpactScore: float64(100 - i*10),
			IncidentCount:            10 - i,
		}
	}
	ranked := RankCompanies(companies)

	leaders := Leaders(ranked, 3)
	if len(leaders) != 3 {
		t.Fatalf("got %d leaders, want 3", len(leaders))
	}
	if leaders[0].ID != 9 {
		t.Errorf("top leader = %d, want 9", leaders[0].ID)
	}

	laggards := Laggards(ranked, 3)
	if len(laggards) != 3 {
		t.Fatalf("got %d laggards, want 3", len(laggards))
	}
	if laggards[0].ID != 0 {
		t.Errorf("worst laggard = %d, want 0", laggards[0].ID)
	}

	// Requesting more than the population clips.
	if len(Leaders(ranked, 50)) != 10 {
		t.Error("leaders must clip to population size")
	}
	if len(Laggards(ranked, 50)) != 10 {
		t.Error("laggards must clip to population size")
	}
}

func TestRankCompaniesOnGeneratedPopulation(t *testing.T) {
	g, err := gen.NewGenerator(nil, 9)
	if err != nil {
		t.Fatal(err)
	}
	g.Now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	companies := g.GenerateCompanies(300)

	ranked := RankCompanies(companies)
	if len(ranked) != len(companies) {
		t.Fatalf("ranked %d of %d companies", len(ranked), len(companies))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].LeaderScore > ranked[i-1].LeaderScore {
			t.Fatalf("ranking not sorted at %d", i)
		}
	}
	for _, rc := range ranked {
		if rc.PerformanceCategory == "" {
			t.Fatalf("company %d has no category", rc.ID)
		}
	}
}

func TestRankCompaniesEmpty(t *testing.T) {
	if RankCompanies(nil) != nil {
		t.Error("empty population must rank to nil")
	}
}
