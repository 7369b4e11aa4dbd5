package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"seed_analytics/pkg/core/gen"
)

// RunRepo persists generation runs. Each run is stored whole as a JSONB
// blob keyed by run ID, with summary columns for listing.
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// RunSummary is one row of the run listing.
type RunSummary struct {
	RunID        string    `json:"run_id"`
	Seed         uint64    `json:"seed"`
	CompanyCount int       `json:"company_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Save upserts a run keyed by run ID.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS dataset_runs (
//	  run_id TEXT PRIMARY KEY,
//	  seed BIGINT,
//	  company_count INT,
//	  result_json JSONB,
//	  generated_at TIMESTAMPTZ
//	);
func (r *RunRepo) Save(ctx context.Context, result *gen.Result) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	query := `
		INSERT INTO dataset_runs (run_id, seed, company_count, result_json, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id)
		DO UPDATE SET
			seed = EXCLUDED.seed,
			company_count = EXCLUDED.company_count,
			result_json = EXCLUDED.result_json,
			generated_at = EXCLUDED.generated_at;
	`

	_, err = pool.Exec(ctx, query, result.RunID, int64(result.Seed), len(result.Companies), jsonData, result.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// Load retrieves a run by ID.
func (r *RunRepo) Load(ctx context.Context, runID string) (*gen.Result, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT result_json FROM dataset_runs WHERE run_id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, runID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no run found for id %s", runID)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var result gen.Result
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &result, nil
}

// List returns run summaries, newest first.
func (r *RunRepo) List(ctx context.Context, limit int) ([]RunSummary, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT run_id, seed, company_count, generated_at
		FROM dataset_runs
		ORDER BY generated_at DESC
		LIMIT $1
	`

	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var s RunSummary
		var seed int64
		if err := rows.Scan(&s.RunID, &seed, &s.CompanyCount, &s.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		s.Seed = uint64(seed)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
