// Package ingest loads uploaded company spreadsheets (CSV or XLSX) into the
// canonical company schema using a declarative column mapping.
package ingest

import "strings"

// columnCandidate maps one plausible source column name to a canonical
// field. Resolution is deterministic first-match-wins in the order the
// candidates are declared: exact normalized equality first, then suffix
// match, then substring match.
type columnCandidate struct {
	name      string
	canonical string
}

// columnCandidates is the full alias table, ordered. More specific aliases
// are listed before looser ones so they win.
var columnCandidates = []columnCandidate{
	// Company identifiers
	{"company_id", "company_id"},
	{"identifier", "company_id"},
	{"id", "company_id"},
	{"company_name", "company_name"},
	{"corporation", "company_name"},
	{"company", "company_name"},
	{"name", "company_name"},

	// Location
	{"state", "state"},
	{"province", "state"},
	{"region", "region"},
	{"city", "city"},
	{"address", "address"},
	{"latitude", "latitude"},
	{"lat", "latitude"},
	{"longitude", "longitude"},
	{"long", "longitude"},

	// Financials
	{"revenue_millions", "revenue_millions"},
	{"revenue", "revenue_millions"},

	// Environmental giving
	{"env_giving_millions", "env_giving_millions"},
	{"environmental_giving", "env_giving_millions"},
	{"env_giving", "env_giving_millions"},
	{"charitable_contributions", "env_giving_millions"},
	{"donations", "env_giving_millions"},
	{"philanthropy", "env_giving_millions"},
	{"giving", "env_giving_millions"},

	// Impact
	{"environmental_impact_score", "environmental_impact_score"},
	{"emissions_tons", "emissions_tons"},
	{"carbon_footprint", "emissions_tons"},
	{"emissions", "emissions_tons"},
	{"ghg", "emissions_tons"},
	{"carbon", "emissions_tons"},
	{"waste_tons", "waste_tons"},
	{"waste", "waste_tons"},
	{"water_usage_gallons", "water_usage_gallons"},
	{"water_usage", "water_usage_gallons"},
	{"energy_consumption_mwh", "energy_consumption_mwh"},
	{"energy_usage", "energy_consumption_mwh"},
	{"power_consumption", "energy_consumption_mwh"},
	{"energy", "energy_consumption_mwh"},
	{"incident_count", "incident_count"},
	{"esg_score", "esg_score"},
	{"esg", "esg_score"},

	// Industry
	{"industry", "industry"},
	{"sector", "industry"},
	{"sic_code", "sic_code"},
	{"standard_industrial_classification", "sic_code"},
	{"sic", "sic_code"},
	{"size", "size"},

	// Transparency
	{"transparency_score", "transparency_score"},
	{"transparency", "transparency_score"},
	{"reporting_quality", "transparency_score"},
	{"disclosure_quality", "transparency_score"},
	{"reporting_level", "reporting_level"},
	{"detail", "detail_level"},

	// Giving split
	{"local_giving_millions", "local_giving_millions"},
	{"local_giving_pct", "local_giving_pct"},
	{"national_giving_millions", "national_giving_millions"},
}

func normalizeHeader(header string) string {
	h := strings.TrimSpace(strings.ToLower(header))
	return strings.ReplaceAll(h, " ", "_")
}

// ResolveColumns maps each source header to its canonical field. A canonical
// field claimed by an earlier header is not reassigned, so duplicate aliases
// resolve deterministically to the leftmost column.
func ResolveColumns(headers []string) map[int]string {
	resolved := map[int]string{}
	claimed := map[string]bool{}
	for i, header := range headers {
		norm := normalizeHeader(header)
		if canonical := resolveOne(norm); canonical != "" && !claimed[canonical] {
			resolved[i] = canonical
			claimed[canonical] = true
		}
	}
	return resolved
}

func resolveOne(norm string) string {
	for _, cand := range columnCandidates {
		if norm == cand.name {
			return cand.canonical
		}
	}
	for _, cand := range columnCandidates {
		if strings.HasSuffix(norm, "_"+cand.name) {
			return cand.canonical
		}
	}
	for _, cand := range columnCandidates {
		if strings.Contains(norm, cand.name) {
			return cand.canonical
		}
	}
	return ""
}
