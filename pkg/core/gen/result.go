package gen

import (
	"time"

	"github.com/google/uuid"
)

// Result is one generation run: the company population and every table
// derived from it. Derived tables are owned by the population they were
// computed from; regenerating produces a whole new Result rather than
// mutating this one.
type Result struct {
	RunID       string    `json:"run_id"`
	Seed        uint64    `json:"seed"`
	GeneratedAt time.Time `json:"generated_at"`

	Companies []Company        `json:"companies"`
	Incidents []Incident       `json:"incidents"`
	History   *History         `json:"history"`
	Marketing []MarketingClaim `json:"marketing"`
	Geography []StateAggregate `json:"geography"`

	CauseSummary  []CauseAreaSummary    `json:"cause_summary"`
	IndustryCause []IndustryCauseGiving `json:"industry_cause"`
}

// Generate runs the full pipeline: the company population first, then the
// derived tables, which need the complete population before they can run.
func (g *Generator) Generate(n int) *Result {
	companies := g.GenerateCompanies(n)
	incidents := g.GenerateIncidents(companies)
	history := g.GenerateHistory(companies)
	marketing := g.GenerateMarketingClaims(companies)
	geography := AggregateByGeography(companies, incidents)
	causes, industryCause := SummarizeCauseAreas(companies)

	return &Result{
		RunID:         uuid.NewString(),
		Seed:          g.Seed,
		GeneratedAt:   g.Now,
		Companies:     companies,
		Incidents:     incidents,
		History:       history,
		Marketing:     marketing,
		Geography:     geography,
		CauseSummary:  causes,
		IndustryCause: industryCause,
	}
}
