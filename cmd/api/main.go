package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"seed_analytics/pkg/api/dataset"
	"seed_analytics/pkg/core/gen"
	"seed_analytics/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Optional distribution-table override
	var cfg *gen.Config
	if path := os.Getenv("DIST_CONFIG"); path != "" {
		loaded, err := gen.LoadConfig(path)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		fmt.Printf("[CONFIG] Loaded distribution tables from %s\n", path)
	}

	// Optional run persistence
	persist := false
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database unavailable, runs will not be persisted: %v\n", err)
		} else {
			persist = true
			defer store.Close()
			fmt.Println("[STORE] Run persistence enabled")
		}
	}

	dataset.InitHandler(cfg, persist)

	// Dataset endpoints
	http.HandleFunc("/api/dataset/generate", dataset.HandleGenerate)
	http.HandleFunc("/api/dataset/companies", dataset.HandleCompanies)
	http.HandleFunc("/api/dataset/incidents", dataset.HandleIncidents)
	http.HandleFunc("/api/dataset/history", dataset.HandleHistory)
	http.HandleFunc("/api/dataset/marketing", dataset.HandleMarketing)
	http.HandleFunc("/api/dataset/geography", dataset.HandleGeography)
	http.HandleFunc("/api/dataset/causes", dataset.HandleCauses)
	http.HandleFunc("/api/dataset/leaders", dataset.HandleLeaders)
	http.HandleFunc("/api/dataset/upload", dataset.HandleUpload)
	http.HandleFunc("/api/dataset/report", dataset.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("[API] Listening on :%s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed: %v\n", err)
		os.Exit(1)
	}
}
