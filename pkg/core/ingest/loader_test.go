package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestResolveColumnsExactAndFuzzy(t *testing.T) {
	headers := []string{"Company Name", "State", "Annual Revenue", "Environmental Giving", "Carbon Footprint", "mystery_column"}
	resolved := ResolveColumns(headers)

	want := map[int]string{
		0: "company_name",
		1: "state",
		2: "revenue_millions",
		3: "env_giving_millions",
		4: "emissions_tons",
	}
	if len(resolved) != len(want) {
		t.Fatalf("resolved %d columns, want %d: %v", len(resolved), len(want), resolved)
	}
	for col, canonical := range want {
		if resolved[col] != canonical {
			t.Errorf("column %d resolved to %q, want %q", col, resolved[col], canonical)
		}
	}
}

func TestResolveColumnsLeftmostWins(t *testing.T) {
	resolved := ResolveColumns([]string{"revenue", "total_revenue"})
	if resolved[0] != "revenue_millions" {
		t.Fatalf("column 0 = %q, want revenue_millions", resolved[0])
	}
	if _, dup := resolved[1]; dup {
		t.Error("duplicate alias must not reassign a claimed field")
	}
}

func TestResolveColumnsSuffixBeatsSubstring(t *testing.T) {
	// "company_state" ends with "_state" and should map to state, not trip the
	// substring match on "company".
	resolved := ResolveColumns([]string{"company_state"})
	if resolved[0] != "state" {
		t.Errorf("company_state resolved to %q, want state", resolved[0])
	}
}

func TestLoadCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Company Name,State,Industry,Revenue,Environmental Giving,Transparency,Incident Count",
		"Acme Energy Corp,TX,Energy,\"$1,250.5\",12.5,72.4,3",
		"Green Retail Inc,CA,Retail,800,4.2,55%,0",
	}, "\n")

	companies, err := LoadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}

	acme := companies[0]
	if acme.Name != "Acme Energy Corp" || acme.State != "TX" || acme.Industry != "Energy" {
		t.Errorf("identity fields wrong: %+v", acme)
	}
	// Currency formatting is stripped before parsing.
	if acme.RevenueMillions != 1250.5 {
		t.Errorf("revenue = %.2f, want 1250.5", acme.RevenueMillions)
	}
	if acme.IncidentCount != 3 {
		t.Errorf("incidents = %d, want 3", acme.IncidentCount)
	}

	retail := companies[1]
	if retail.TransparencyScore != 55 {
		t.Errorf("percent cell parsed to %.2f, want 55", retail.TransparencyScore)
	}
	if retail.ID != 1 {
		t.Errorf("row index id = %d, want 1", retail.ID)
	}
}

func TestLoadCSVDefaultsUnknowns(t *testing.T) {
	csvData := "Company Name,Revenue\nNameless Holdings,100\n"
	companies, err := LoadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}
	if companies[0].Industry != "Unknown" || companies[0].State != "Unknown" {
		t.Errorf("missing categoricals must default to Unknown: %+v", companies[0])
	}
}

func TestLoadCSVUnparseableCellsAreSkipped(t *testing.T) {
	csvData := "Company Name,Revenue,Transparency\nOdd Data LLC,not-a-number,64\n"
	companies, err := LoadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatal(err)
	}
	if companies[0].RevenueMillions != 0 {
		t.Errorf("bad numeric cell must stay zero, got %.2f", companies[0].RevenueMillions)
	}
	if companies[0].TransparencyScore != 64 {
		t.Errorf("good cells still parse: got %.2f", companies[0].TransparencyScore)
	}
}

func TestLoadCSVRejectsHeaderOnly(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("Company Name,Revenue\n")); err == nil {
		t.Error("header-only file must be rejected")
	}
}

func TestLoadCSVRejectsUnrecognizableHeader(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("foo,bar\n1,2\n")); err == nil {
		t.Error("file with no recognizable columns must be rejected")
	}
}

func TestLoadRejectsUnsupportedExtension(t *testing.T) {
	if _, err := Load("data.pdf", strings.NewReader("x")); err == nil {
		t.Error("unsupported extension must be rejected")
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Company Name", "State", "Revenue", "ESG"},
		{"Sheet Industries", "OH", 450.25, 61.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	companies, err := Load("upload.xlsx", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 1 {
		t.Fatalf("got %d companies, want 1", len(companies))
	}
	c := companies[0]
	if c.Name != "Sheet Industries" || c.State != "OH" {
		t.Errorf("identity fields wrong: %+v", c)
	}
	if c.RevenueMillions != 450.25 || c.ESGScore != 61.5 {
		t.Errorf("numeric fields wrong: %+v", c)
	}
}

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1234.5", 1234.5},
		{"$1,234.50", 1234.5},
		{"45%", 45},
		{" 7 ", 7},
	}
	for _, tc := range cases {
		got, err := parseNumeric(tc.in)
		if err != nil {
			t.Errorf("parseNumeric(%q) errored: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseNumeric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseNumeric("n/a"); err == nil {
		t.Error("non-numeric cell must error")
	}
}
