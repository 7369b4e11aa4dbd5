package gen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestValidateRejectsNonPositiveWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.States[0].Weight = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero state weight")
	}

	cfg = DefaultConfig()
	cfg.Industries[3].Weight = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative industry weight")
	}
}

func TestValidateRejectsEmptyVocabulary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CauseAreas = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty cause vocabulary")
	}

	cfg = DefaultConfig()
	cfg.ClaimTypes = []string{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty claim vocabulary")
	}
}

func TestValidateRejectsUnorderedRevenueRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SizeTiers[0].MinRevenue = 200
	cfg.SizeTiers[0].MaxRevenue = 100
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for inverted revenue range")
	}
}

func TestReportingLevelThresholds(t *testing.T) {
	cases := []struct {
		score float64
		level string
	}{
		{0, "Minimal"},
		{19.9, "Minimal"},
		{20, "Basic"},
		{39.9, "Basic"},
		{40, "Standard"},
		{59.9, "Standard"},
		{60, "Detailed"},
		{79.9, "Detailed"},
		{80, "Comprehensive"},
		{100, "Comprehensive"},
	}
	for _, c := range cases {
		if got := ReportingLevelFor(c.score); got != c.level {
			t.Errorf("ReportingLevelFor(%v) = %q, want %q", c.score, got, c.level)
		}
	}
}

func TestLoadConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.yaml")
	// Override just the size tiers; other tables keep defaults.
	data := []byte(`size_tiers:
  - name: "Tiny ($1M-$10M)"
    weight: 1.0
    min_rev: 1
    max_rev: 10
    transparency_factor: 0.4
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.SizeTiers) != 1 || cfg.SizeTiers[0].Name != "Tiny ($1M-$10M)" {
		t.Errorf("size tiers not overridden: %+v", cfg.SizeTiers)
	}
	if len(cfg.States) == 0 || len(cfg.CauseAreas) == 0 {
		t.Error("default tables should survive a partial override")
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.yaml")
	data := []byte(`industries:
  - name: "Mining"
    weight: 0
    env_impact: high
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected validation error for zero-weight industry")
	}
}
