package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"seed_analytics/pkg/core/gen"
	"seed_analytics/pkg/core/report"
	"seed_analytics/pkg/core/store"
)

func main() {
	godotenv.Load()

	var (
		count      = flag.Int("n", 500, "number of companies to generate")
		seed       = flag.Uint64("seed", 0, "random seed (0 = derive from clock)")
		outDir     = flag.String("out", "dataset", "output directory")
		format     = flag.String("format", "csv", "output format: csv or json")
		withReport = flag.Bool("report", false, "also write a markdown run summary")
		save       = flag.Bool("save", false, "persist the run to the database (DATABASE_URL)")
		configPath = flag.String("config", "", "optional YAML distribution-table override")
	)
	flag.Parse()

	var cfg *gen.Config
	if *configPath != "" {
		loaded, err := gen.LoadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	generator, err := gen.NewGenerator(cfg, *seed)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("[GENERATE] Generating %d companies (seed %d)\n", *count, *seed)
	result := generator.Generate(*count)
	fmt.Printf("[GENERATE] Run %s: %d companies, %d incidents, %d claims, %d states\n",
		result.RunID, len(result.Companies), len(result.Incidents), len(result.Marketing), len(result.Geography))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal(err)
	}

	switch *format {
	case "json":
		if err := writeJSON(filepath.Join(*outDir, "dataset.json"), result); err != nil {
			fatal(err)
		}
	case "csv":
		if err := writeCSVs(*outDir, result); err != nil {
			fatal(err)
		}
	default:
		fatal(fmt.Errorf("unknown format %q", *format))
	}

	if *withReport {
		md := report.Markdown(result)
		if !report.ValidateMarkdown(md) {
			fatal(fmt.Errorf("run summary failed markdown validation"))
		}
		if err := os.WriteFile(filepath.Join(*outDir, "summary.md"), []byte(md), 0o644); err != nil {
			fatal(err)
		}
	}

	if *save {
		if err := store.InitDB(context.Background()); err != nil {
			fatal(err)
		}
		defer store.Close()
		if err := store.NewRunRepo().Save(context.Background(), result); err != nil {
			fatal(err)
		}
		fmt.Printf("[GENERATE] Persisted run %s\n", result.RunID)
	}

	fmt.Printf("[GENERATE] Wrote %s output to %s\n", *format, *outDir)
}

func fatal(err error) {
	fmt.Printf("[FATAL] %v\n", err)
	os.Exit(1)
}

func writeJSON(path string, result *gen.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeCSVs(dir string, result *gen.Result) error {
	if err := writeCompaniesCSV(filepath.Join(dir, "companies.csv"), result.Companies); err != nil {
		return err
	}
	if err := writeIncidentsCSV(filepath.Join(dir, "incidents.csv"), result.Incidents); err != nil {
		return err
	}
	if err := writeGeographyCSV(filepath.Join(dir, "geography.csv"), result.Geography); err != nil {
		return err
	}
	// History and marketing are large and nested; they ship as JSON.
	if err := writeJSONFile(filepath.Join(dir, "history.json"), result.History); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(dir, "marketing.json"), result.Marketing)
}

func writeJSONFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(v)
}

func writeCompaniesCSV(path string, companies []gen.Company) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"company_id", "company_name", "state", "state_name", "region", "industry",
		"sic_code", "size", "revenue_millions", "env_giving_millions", "env_giving_pct",
		"transparency_score", "reporting_level", "environmental_impact_score",
		"emissions_tons", "water_usage_gallons", "waste_tons", "energy_consumption_mwh",
		"incident_count", "esg_score", "local_giving_pct", "local_giving_millions",
		"national_giving_millions", "latitude", "longitude",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range companies {
		row := []string{
			strconv.Itoa(c.ID), c.Name, c.State, c.StateName, c.Region, c.Industry,
			c.SICCode, c.Size, f64(c.RevenueMillions), f64(c.EnvGivingMillions), f64(c.EnvGivingPct),
			f64(c.TransparencyScore), c.ReportingLevel, f64(c.EnvironmentalImpactScore),
			f64(c.EmissionsTons), f64(c.WaterUsageGallons), f64(c.WasteTons), f64(c.EnergyConsumptionMWh),
			strconv.Itoa(c.IncidentCount), f64(c.ESGScore), f64(c.LocalGivingPct), f64(c.LocalGivingMillions),
			f64(c.NationalGivingMillions), f64(c.Latitude), f64(c.Longitude),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeIncidentsCSV(path string, incidents []gen.Incident) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"company_id", "company_name", "state", "industry", "incident_type", "severity",
		"latitude", "longitude", "date", "year", "remediation_cost_millions",
		"in_environmental_justice_community", "prompt_disclosure", "disclosure_lag_days",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, inc := range incidents {
		row := []string{
			strconv.Itoa(inc.CompanyID), inc.CompanyName, inc.State, inc.Industry, inc.Type,
			strconv.Itoa(inc.Severity), f64(inc.Latitude), f64(inc.Longitude),
			inc.Date.Format("2006-01-02"), strconv.Itoa(inc.Year), f64(inc.RemediationCostMillions),
			strconv.FormatBool(inc.InEnvironmentalJusticeCommunity), strconv.FormatBool(inc.PromptDisclosure),
			strconv.Itoa(inc.DisclosureLagDays),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeGeographyCSV(path string, aggregates []gen.StateAggregate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"state", "state_name", "region", "num_companies", "env_giving_millions",
		"local_giving_millions", "national_giving_millions", "avg_transparency_score",
		"avg_environmental_impact", "incident_count", "avg_esg_score",
		"avg_giving_per_company", "giving_pct_of_revenue", "incident_density",
		"giving_to_impact_ratio", "ej_incident_count", "ej_incident_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, agg := range aggregates {
		row := []string{
			agg.State, agg.StateName, agg.Region, strconv.Itoa(agg.NumCompanies),
			f64(agg.EnvGivingMillions), f64(agg.LocalGivingMillions), f64(agg.NationalGivingMillions),
			f64(agg.AvgTransparencyScore), f64(agg.AvgEnvironmentalImpact),
			strconv.Itoa(agg.IncidentCount), f64(agg.AvgESGScore),
			f64Ptr(agg.AvgGivingPerCompany), f64Ptr(agg.GivingPctOfRevenue),
			f64Ptr(agg.IncidentDensity), f64Ptr(agg.GivingToImpactRatio),
			strconv.Itoa(agg.EJIncidentCount), f64Ptr(agg.EJIncidentPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func f64(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// f64Ptr renders a guarded metric; nil means "not computed" and exports empty.
func f64Ptr(v *float64) string {
	if v == nil {
		return ""
	}
	return f64(*v)
}
