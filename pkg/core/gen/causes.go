package gen

import "sort"

// CauseAreaSummary is the population-level rollup for one cause area.
type CauseAreaSummary struct {
	CauseArea               string  `json:"cause_area"`
	TotalGivingMillions     float64 `json:"total_giving_millions"`
	SupportingCompanies     int     `json:"supporting_companies"`
	PercentageOfTotalGiving float64 `json:"percentage_of_total_giving"`
}

// IndustryCauseGiving is one industry's giving into one cause area.
type IndustryCauseGiving struct {
	Industry               string  `json:"industry"`
	CauseArea              string  `json:"cause_area"`
	IndustryGivingMillions float64 `json:"industry_giving_millions"`
}

// SummarizeCauseAreas rolls the per-company cause allocations up to totals,
// supporter counts and share of all environmental giving, plus an
// industry-by-cause breakdown. Rows are sorted by total giving descending.
func SummarizeCauseAreas(companies []Company) ([]CauseAreaSummary, []IndustryCauseGiving) {
	totals := map[string]float64{}
	supporters := map[string]int{}
	industryTotals := map[string]map[string]float64{}
	var totalGiving float64

	for _, c := range companies {
		totalGiving += c.EnvGivingMillions
		for cause, amount := range c.CauseGiving {
			if amount <= 0 {
				continue
			}
			totals[cause] += amount
			supporters[cause]++
			byCause, ok := industryTotals[c.Industry]
			if !ok {
				byCause = map[string]float64{}
				industryTotals[c.Industry] = byCause
			}
			byCause[cause] += amount
		}
	}

	summaries := make([]CauseAreaSummary, 0, len(totals))
	for cause, total := range totals {
		pct := 0.0
		if totalGiving > 0 {
			pct = total / totalGiving * 100
		}
		summaries = append(summaries, CauseAreaSummary{
			CauseArea:               cause,
			TotalGivingMillions:     total,
			SupportingCompanies:     supporters[cause],
			PercentageOfTotalGiving: pct,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalGivingMillions != summaries[j].TotalGivingMillions {
			return summaries[i].TotalGivingMillions > summaries[j].TotalGivingMillions
		}
		return summaries[i].CauseArea < summaries[j].CauseArea
	})

	var industryRows []IndustryCauseGiving
	industries := make([]string, 0, len(industryTotals))
	for industry := range industryTotals {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	for _, industry := range industries {
		causes := make([]string, 0, len(industryTotals[industry]))
		for cause := range industryTotals[industry] {
			causes = append(causes, cause)
		}
		sort.Strings(causes)
		for _, cause := range causes {
			industryRows = append(industryRows, IndustryCauseGiving{
				Industry:               industry,
				CauseArea:              cause,
				IndustryGivingMillions: industryTotals[industry][cause],
			})
		}
	}

	return summaries, industryRows
}
