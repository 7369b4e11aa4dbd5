// Package gen generates the synthetic corporate environmental-giving dataset:
// a company population plus the incident, history, marketing and geography
// tables derived from it.
package gen

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// StateInfo is one entry of the weighted state distribution.
type StateInfo struct {
	Abbr   string  `yaml:"abbr" validate:"required"`
	Name   string  `yaml:"name" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gt=0"`
	Region string  `yaml:"region" validate:"required"`
	Cities []string `yaml:"cities"`
}

// IndustryInfo is one entry of the weighted industry distribution.
// EnvImpact is the qualitative impact tier: "low", "medium" or "high".
type IndustryInfo struct {
	Name      string  `yaml:"name" validate:"required"`
	Weight    float64 `yaml:"weight" validate:"gt=0"`
	EnvImpact string  `yaml:"env_impact" validate:"oneof=low medium high"`
	SICCode   string  `yaml:"sic"`
	NameWords []string `yaml:"name_words"`
}

// SizeTier is one entry of the weighted company-size distribution. Revenue
// bounds are in millions. TransparencyFactor scales the transparency draw.
type SizeTier struct {
	Name               string  `yaml:"name" validate:"required"`
	Weight             float64 `yaml:"weight" validate:"gt=0"`
	MinRevenue         float64 `yaml:"min_rev" validate:"gt=0"`
	MaxRevenue         float64 `yaml:"max_rev" validate:"gt=0"`
	TransparencyFactor float64 `yaml:"transparency_factor" validate:"gt=0"`
}

// Config holds every static distribution table the generator samples from.
type Config struct {
	States               []StateInfo    `yaml:"states" validate:"min=1,dive"`
	Industries           []IndustryInfo `yaml:"industries" validate:"min=1,dive"`
	SizeTiers            []SizeTier     `yaml:"size_tiers" validate:"min=1,dive"`
	CauseAreas           []string       `yaml:"cause_areas" validate:"min=1"`
	TransparencyMetrics  []string       `yaml:"transparency_metrics" validate:"min=1"`
	ClaimTypes           []string       `yaml:"claim_types" validate:"min=1"`
	ClaimChannels        []string       `yaml:"claim_channels" validate:"min=1"`
	NamePrefixes         []string       `yaml:"name_prefixes" validate:"min=1"`
	NameSuffixes         []string       `yaml:"name_suffixes" validate:"min=1"`
}

// ReportingLevels ordered from least to most disclosed. Thresholds are fixed:
// <20 Minimal, <40 Basic, <60 Standard, <80 Detailed, else Comprehensive.
var ReportingLevels = []string{"Minimal", "Basic", "Standard", "Detailed", "Comprehensive"}

// ReportingLevelFor maps a 0-100 transparency score to its reporting level.
func ReportingLevelFor(score float64) string {
	switch {
	case score < 20:
		return "Minimal"
	case score < 40:
		return "Basic"
	case score < 60:
		return "Standard"
	case score < 80:
		return "Detailed"
	default:
		return "Comprehensive"
	}
}

// Validate fails fast on any degenerate distribution table so sampling never
// silently falls back to uniform weights.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid distribution config: %w", err)
	}
	for _, tier := range c.SizeTiers {
		if tier.MinRevenue >= tier.MaxRevenue {
			return fmt.Errorf("invalid distribution config: size tier %q revenue range [%f,%f] is not ordered", tier.Name, tier.MinRevenue, tier.MaxRevenue)
		}
	}
	return nil
}

// LoadConfig reads a YAML distribution-table file. Tables absent from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read distribution config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse distribution config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in distribution tables. Weights reproduce
// the realistic skew of corporate headquarters (large-state concentration)
// and industry mix.
func DefaultConfig() *Config {
	return &Config{
		States: []StateInfo{
			{Abbr: "CA", Name: "California", Weight: 0.15, Region: "West", Cities: []string{"Los Angeles", "San Francisco", "San Diego", "San Jose"}},
			{Abbr: "NY", Name: "New York", Weight: 0.12, Region: "Northeast", Cities: []string{"New York", "Buffalo", "Rochester", "Syracuse"}},
			{Abbr: "TX", Name: "Texas", Weight: 0.10, Region: "South", Cities: []string{"Houston", "Dallas", "Austin", "San Antonio"}},
			{Abbr: "FL", Name: "Florida", Weight: 0.08, Region: "South", Cities: []string{"Miami", "Orlando", "Tampa", "Jacksonville"}},
			{Abbr: "IL", Name: "Illinois", Weight: 0.07, Region: "Midwest", Cities: []string{"Chicago", "Springfield", "Peoria", "Rockford"}},
			{Abbr: "MA", Name: "Massachusetts", Weight: 0.06, Region: "Northeast", Cities: []string{"Boston", "Cambridge", "Worcester", "Springfield"}},
			{Abbr: "WA", Name: "Washington", Weight: 0.06, Region: "West", Cities: []string{"Seattle", "Tacoma", "Spokane", "Bellevue"}},
			{Abbr: "PA", Name: "Pennsylvania", Weight: 0.05, Region: "Northeast", Cities: []string{"Philadelphia", "Pittsburgh", "Allentown", "Erie"}},
			{Abbr: "OH", Name: "Ohio", Weight: 0.05, Region: "Midwest", Cities: []string{"Columbus", "Cleveland", "Cincinnati", "Toledo"}},
			{Abbr: "GA", Name: "Georgia", Weight: 0.05, Region: "South", Cities: []string{"Atlanta", "Savannah", "Augusta", "Athens"}},
			{Abbr: "MI", Name: "Michigan", Weight: 0.05, Region: "Midwest", Cities: []string{"Detroit", "Grand Rapids", "Ann Arbor", "Lansing"}},
			{Abbr: "MN", Name: "Minnesota", Weight: 0.04, Region: "Midwest", Cities: []string{"Minneapolis", "Saint Paul", "Rochester", "Duluth"}},
			{Abbr: "CO", Name: "Colorado", Weight: 0.04, Region: "West", Cities: []string{"Denver", "Colorado Springs", "Boulder", "Fort Collins"}},
			{Abbr: "NC", Name: "North Carolina", Weight: 0.04, Region: "South", Cities: []string{"Charlotte", "Raleigh", "Greensboro", "Durham"}},
			{Abbr: "NJ", Name: "New Jersey", Weight: 0.04, Region: "Northeast", Cities: []string{"Newark", "Jersey City", "Paterson", "Atlantic City"}},
		},
		Industries: []IndustryInfo{
			{Name: "Energy", Weight: 0.11, EnvImpact: "high", SICCode: "1311", NameWords: []string{"Energy", "Power", "Gas", "Oil", "Solar", "Renewables"}},
			{Name: "Technology", Weight: 0.15, EnvImpact: "low", SICCode: "7370", NameWords: []string{"Tech", "Digital", "Software", "Systems", "Computing", "Data"}},
			{Name: "Manufacturing", Weight: 0.15, EnvImpact: "high", SICCode: "3711", NameWords: []string{"Manufacturing", "Industrial", "Products", "Fabrication"}},
			{Name: "Retail", Weight: 0.10, EnvImpact: "medium", SICCode: "5331", NameWords: []string{"Retail", "Stores", "Consumer", "Marketplace", "Shopping"}},
			{Name: "Healthcare", Weight: 0.10, EnvImpact: "low", SICCode: "8000", NameWords: []string{"Health", "Medical", "Care", "Wellness", "Pharmaceuticals"}},
			{Name: "Financial Services", Weight: 0.08, EnvImpact: "low", SICCode: "6021", NameWords: []string{"Financial", "Banking", "Investments", "Capital", "Credit"}},
			{Name: "Food & Beverage", Weight: 0.08, EnvImpact: "medium", SICCode: "2080", NameWords: []string{"Foods", "Beverages", "Nutrition", "Dining"}},
			{Name: "Transportation", Weight: 0.06, EnvImpact: "high", SICCode: "4512", NameWords: []string{"Transport", "Logistics", "Shipping", "Freight", "Carriers"}},
			{Name: "Telecommunications", Weight: 0.05, EnvImpact: "low", SICCode: "4813", NameWords: []string{"Telecom", "Communications", "Network", "Wireless"}},
			{Name: "Chemical", Weight: 0.05, EnvImpact: "high", SICCode: "2800", NameWords: []string{"Chemical", "Materials", "Polymers", "Compounds"}},
			{Name: "Construction", Weight: 0.07, EnvImpact: "medium", SICCode: "1531", NameWords: []string{"Construction", "Building", "Development", "Properties", "Structures"}},
		},
		SizeTiers: []SizeTier{
			{Name: "Small ($10M-$100M)", Weight: 0.4, MinRevenue: 10, MaxRevenue: 100, TransparencyFactor: 0.5},
			{Name: "Medium ($100M-$1B)", Weight: 0.3, MinRevenue: 100, MaxRevenue: 1000, TransparencyFactor: 0.7},
			{Name: "Large ($1B-$10B)", Weight: 0.2, MinRevenue: 1000, MaxRevenue: 10000, TransparencyFactor: 0.85},
			{Name: "Very Large (>$10B)", Weight: 0.1, MinRevenue: 10000, MaxRevenue: 50000, TransparencyFactor: 0.95},
		},
		CauseAreas: []string{
			"Climate Change Mitigation",
			"Renewable Energy",
			"Habitat Conservation",
			"Biodiversity Protection",
			"Ocean Conservation",
			"Water Resource Protection",
			"Sustainable Agriculture",
			"Environmental Justice",
			"Environmental Education",
			"Waste Reduction & Recycling",
			"Air Quality Improvement",
			"Sustainable Transportation",
		},
		TransparencyMetrics: []string{
			"Environmental Impact Disclosure",
			"Giving Strategy Documentation",
			"Goal Setting and Progress Tracking",
			"Third-Party Verification",
			"Stakeholder Engagement",
		},
		ClaimTypes: []string{
			"Carbon Neutrality/Net Zero",
			"Sustainable Products/Services",
			"Environmental Leadership",
			"Resource Conservation",
			"Responsible Supply Chain",
			"Eco-Friendly Practices",
		},
		ClaimChannels: []string{
			"Corporate Website", "Annual Report", "Press Release",
			"Social Media", "Advertisement", "Product Packaging",
		},
		NamePrefixes: []string{
			"Global", "American", "International", "National", "United", "Allied",
			"Pacific", "Atlantic", "Advanced", "Strategic", "Superior", "Prime",
			"Pinnacle", "Summit", "Elite", "Modern", "Capital", "Consolidated",
		},
		NameSuffixes: []string{
			"Corp", "Inc", "Corporation", "Industries", "Group", "Partners",
			"Enterprises", "Holdings", "Solutions", "Systems", "Technologies",
			"Innovations", "Resources", "Associates", "International", "Worldwide",
		},
	}
}
