package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"seed_analytics/pkg/core/gen"
)

// Load reads an uploaded spreadsheet into the canonical company schema,
// dispatching on the file extension.
func Load(fileName string, r io.Reader) ([]gen.Company, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return LoadCSV(r)
	case ".xlsx", ".xls":
		return LoadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(fileName))
	}
}

// LoadCSV reads a CSV with a header row.
func LoadCSV(r io.Reader) ([]gen.Company, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return fromRows(rows)
}

// LoadXLSX reads the first sheet of an Excel workbook, first row as headers.
func LoadXLSX(r io.Reader) ([]gen.Company, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]gen.Company, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file has no data rows")
	}

	columns := ResolveColumns(rows[0])
	if len(columns) == 0 {
		return nil, fmt.Errorf("no recognizable columns in header %v", rows[0])
	}

	companies := make([]gen.Company, 0, len(rows)-1)
	for i, row := range rows[1:] {
		c := gen.Company{ID: i, Industry: "Unknown", State: "Unknown"}
		for col, canonical := range columns {
			if col >= len(row) {
				continue
			}
			setField(&c, canonical, row[col])
		}
		companies = append(companies, c)
	}
	return companies, nil
}

// setField assigns one cell to its canonical company field. Unparseable
// numeric cells are left unset rather than failing the load.
func setField(c *gen.Company, canonical, raw string) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return
	}
	switch canonical {
	case "company_id":
		if id, err := strconv.Atoi(value); err == nil {
			c.ID = id
		}
	case "company_name":
		c.Name = value
	case "state":
		c.State = value
	case "region":
		c.Region = value
	case "city":
		c.City = value
	case "address":
		c.Address = value
	case "industry":
		c.Industry = value
	case "sic_code":
		c.SICCode = value
	case "size":
		c.Size = value
	case "reporting_level":
		c.ReportingLevel = value
	case "latitude":
		setFloat(&c.Latitude, value)
	case "longitude":
		setFloat(&c.Longitude, value)
	case "revenue_millions":
		setFloat(&c.RevenueMillions, value)
	case "env_giving_millions":
		setFloat(&c.EnvGivingMillions, value)
	case "local_giving_millions":
		setFloat(&c.LocalGivingMillions, value)
	case "local_giving_pct":
		setFloat(&c.LocalGivingPct, value)
	case "national_giving_millions":
		setFloat(&c.NationalGivingMillions, value)
	case "transparency_score":
		setFloat(&c.TransparencyScore, value)
	case "environmental_impact_score":
		setFloat(&c.EnvironmentalImpactScore, value)
	case "emissions_tons":
		setFloat(&c.EmissionsTons, value)
	case "waste_tons":
		setFloat(&c.WasteTons, value)
	case "water_usage_gallons":
		setFloat(&c.WaterUsageGallons, value)
	case "energy_consumption_mwh":
		setFloat(&c.EnergyConsumptionMWh, value)
	case "esg_score":
		setFloat(&c.ESGScore, value)
	case "incident_count":
		if v, err := parseNumeric(value); err == nil {
			c.IncidentCount = int(v)
		}
	case "detail_level":
		if v, err := parseNumeric(value); err == nil {
			c.DetailLevel = int(v)
		}
	}
}

func setFloat(dst *float64, value string) {
	if v, err := parseNumeric(value); err == nil {
		*dst = v
	}
}

// parseNumeric handles common currency formatting: $, thousands separators
// and a trailing percent sign.
func parseNumeric(value string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "").Replace(value)
	return strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
}
