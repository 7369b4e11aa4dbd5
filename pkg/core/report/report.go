// Package report renders a generation run into a markdown summary for the
// dashboard's export view.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"seed_analytics/pkg/core/gen"
	"seed_analytics/pkg/core/score"
)

// Markdown builds the run summary as markdown.
func Markdown(result *gen.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Corporate Environmental Giving — Run %s\n\n", result.RunID)
	fmt.Fprintf(&b, "Generated %s (seed %d)\n\n", result.GeneratedAt.Format("2006-01-02 15:04"), result.Seed)

	var totalGiving, totalRevenue float64
	for _, c := range result.Companies {
		totalGiving += c.EnvGivingMillions
		totalRevenue += c.RevenueMillions
	}
	fmt.Fprintf(&b, "## Population\n\n")
	fmt.Fprintf(&b, "- Companies: %d\n", len(result.Companies))
	fmt.Fprintf(&b, "- Total revenue: $%.1fM\n", totalRevenue)
	fmt.Fprintf(&b, "- Total environmental giving: $%.2fM\n", totalGiving)
	fmt.Fprintf(&b, "- Incidents: %d\n", len(result.Incidents))
	fmt.Fprintf(&b, "- Marketing claims: %d\n\n", len(result.Marketing))

	fmt.Fprintf(&b, "## Top states by giving\n\n")
	fmt.Fprintf(&b, "| State | Companies | Giving ($M) | Avg ESG |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	geo := append([]gen.StateAggregate(nil), result.Geography...)
	sort.Slice(geo, func(i, j int) bool { return geo[i].EnvGivingMillions > geo[j].EnvGivingMillions })
	for i, agg := range geo {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "| %s | %d | %.2f | %.1f |\n", agg.StateName, agg.NumCompanies, agg.EnvGivingMillions, agg.AvgESGScore)
	}
	b.WriteString("\n")

	if len(result.CauseSummary) > 0 {
		fmt.Fprintf(&b, "## Leading cause areas\n\n")
		for i, cause := range result.CauseSummary {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: $%.2fM (%.1f%% of giving, %d companies)\n",
				cause.CauseArea, cause.TotalGivingMillions, cause.PercentageOfTotalGiving, cause.SupportingCompanies)
		}
		b.WriteString("\n")
	}

	ranked := score.RankCompanies(result.Companies)
	if len(ranked) > 0 {
		fmt.Fprintf(&b, "## Environmental leaders\n\n")
		for _, rc := range score.Leaders(ranked, 5) {
			fmt.Fprintf(&b, "- %s (%s, %s): score %.1f\n", rc.Name, rc.Industry, rc.State, rc.LeaderScore)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the run summary to HTML.
func HTML(result *gen.Result) (string, error) {
	md := Markdown(result)
	if !ValidateMarkdown(md) {
		return "", fmt.Errorf("run summary failed markdown validation")
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks that the summary parses as Markdown. Goldmark is
// very permissive, so this is a basic sanity check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
