// Package dataset exposes the generated dataset to the dashboard frontend as
// JSON tables.
package dataset

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"seed_analytics/pkg/core/gen"
	"seed_analytics/pkg/core/ingest"
	"seed_analytics/pkg/core/report"
	"seed_analytics/pkg/core/score"
	"seed_analytics/pkg/core/store"
)

var (
	mu      sync.RWMutex
	current *gen.Result
	distCfg *gen.Config
	runRepo *store.RunRepo
	persist bool
)

// InitHandler wires the handler package. cfg may be nil for the built-in
// distribution tables; persistRuns requires a previously initialized pool.
func InitHandler(cfg *gen.Config, persistRuns bool) {
	if cfg == nil {
		cfg = gen.DefaultConfig()
	}
	distCfg = cfg
	persist = persistRuns
	if persistRuns {
		runRepo = store.NewRunRepo()
	}
}

type GenerateRequest struct {
	Count int     `json:"count"`
	Seed  *uint64 `json:"seed"`
}

// HandleGenerate regenerates the dataset and returns the full run. The new
// run replaces the previous one wholesale; derived tables are never carried
// across populations.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r, "POST") {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Count <= 0 {
		req.Count = 500
	}
	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	generator, err := gen.NewGenerator(distCfg, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	result := generator.Generate(req.Count)

	mu.Lock()
	current = result
	mu.Unlock()

	if persist && runRepo != nil {
		if err := runRepo.Save(r.Context(), result); err != nil {
			fmt.Printf("[DATASET] failed to persist run %s: %v\n", result.RunID, err)
		}
	}

	fmt.Printf("[DATASET] generated run %s: %d companies, %d incidents\n", result.RunID, len(result.Companies), len(result.Incidents))
	writeJSON(w, result)
}

// HandleCompanies returns the current company table.
func HandleCompanies(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} { return res.Companies })
}

// HandleIncidents returns the current incident table.
func HandleIncidents(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} { return res.Incidents })
}

// HandleHistory returns the three historical series and their rollups.
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} { return res.History })
}

// HandleMarketing returns the marketing-claims table.
func HandleMarketing(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} { return res.Marketing })
}

// HandleGeography returns the per-state aggregates.
func HandleGeography(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} { return res.Geography })
}

// HandleCauses returns the cause-area summary and industry breakdown.
func HandleCauses(w http.ResponseWriter, r *http.Request) {
	serveTable(w, r, func(res *gen.Result) interface{} {
		return map[string]interface{}{
			"cause_summary":  res.CauseSummary,
			"industry_cause": res.IndustryCause,
		}
	})
}

// HandleLeaders recomputes the leadership ranking over the current
// population. ?top=N controls the leader/laggard slice size (default 10).
func HandleLeaders(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r, "GET") {
		return
	}
	res := snapshot()
	if res == nil {
		http.Error(w, "no dataset generated yet", http.StatusNotFound)
		return
	}

	top := 10
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "top must be a positive integer", http.StatusBadRequest)
			return
		}
		top = n
	}

	ranked := score.RankCompanies(res.Companies)
	writeJSON(w, map[string]interface{}{
		"leaders":  score.Leaders(ranked, top),
		"laggards": score.Laggards(ranked, top),
		"total":    len(ranked),
	})
}

// HandleUpload ingests an uploaded CSV/XLSX and returns the mapped companies
// with geography and ranking recomputed over the upload.
func HandleUpload(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r, "POST") {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	companies, err := ingest.Load(header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	geography := gen.AggregateByGeography(companies, nil)
	ranked := score.RankCompanies(companies)

	fmt.Printf("[DATASET] ingested %s: %d companies\n", header.Filename, len(companies))
	writeJSON(w, map[string]interface{}{
		"companies": companies,
		"geography": geography,
		"leaders":   score.Leaders(ranked, 10),
		"laggards":  score.Laggards(ranked, 10),
	})
}

// HandleReport renders the current run's summary as HTML.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r, "GET") {
		return
	}
	res := snapshot()
	if res == nil {
		http.Error(w, "no dataset generated yet", http.StatusNotFound)
		return
	}

	html, err := report.HTML(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func serveTable(w http.ResponseWriter, r *http.Request, pick func(*gen.Result) interface{}) {
	if !cors(w, r, "GET") {
		return
	}
	res := snapshot()
	if res == nil {
		http.Error(w, "no dataset generated yet", http.StatusNotFound)
		return
	}
	writeJSON(w, pick(res))
}

func snapshot() *gen.Result {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func cors(w http.ResponseWriter, r *http.Request, method string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", method+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[DATASET] failed to encode response: %v\n", err)
	}
}
