package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"park-sync/core/config"
	"park-sync/core/database"
	"park-sync/core/reconcile"
	"park-sync/core/storage"
	"park-sync/feature/park/models"
	"park-sync/feature/park/source"
)

// Prints which wait-time and schedule names fail to join the basic catalog
// of one park, under both the normalized and the exact join key.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_join <parkId>")
	}
	parkID := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	deps := source.Deps{StorageConfig: cfg.Storage}
	if cfg.Sources.Basic == config.DriverStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
		deps.Storage = client
	}
	if cfg.Sources.Schedules == config.DriverDatabase {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
		deps.DB = db
	}

	sources, err := source.Build(cfg, deps)
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.FetchTimeout())
	defer cancel()

	fmt.Println("=== STEP 1: Basic Data ===")
	basic, err := sources.Basic.FetchBasic(ctx, parkID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Attractions: %d, performances: %d\n", len(basic.Attractions), len(basic.Performances))

	fmt.Println("\n=== STEP 2: Wait Times ===")
	waits, err := sources.WaitTimes.FetchWaitTimes(ctx, parkID)
	if err != nil {
		log.Fatal(err)
	}
	attractionNames := make([]string, 0, len(basic.Attractions))
	for _, a := range basic.Attractions {
		attractionNames = append(attractionNames, a.Name)
	}
	waitNames := make([]string, 0, len(waits))
	for _, w := range waits {
		waitNames = append(waitNames, w.Name)
	}
	waitReport := compare(attractionNames, waitNames)
	waitReport.print()

	fmt.Println("\n=== STEP 3: Schedules ===")
	schedules, err := sources.Schedules.FetchSchedules(ctx, parkID)
	if err != nil {
		log.Fatal(err)
	}
	performanceNames := make([]string, 0, len(basic.Performances))
	for _, p := range basic.Performances {
		performanceNames = append(performanceNames, p.Name)
	}
	scheduleNames := make([]string, 0, len(schedules))
	for _, s := range schedules {
		scheduleNames = append(scheduleNames, s.Name)
	}
	scheduleReport := compare(performanceNames, scheduleNames)
	scheduleReport.print()

	output := map[string]interface{}{
		"park":       parkID,
		"wait_times": waitReport,
		"schedules":  scheduleReport,
		"stale":      staleCandidates(basic, waitNames),
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile("debug_join.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_join.json for details.")
}

type joinReport struct {
	Incoming       int      `json:"incoming"`
	MatchedExact   int      `json:"matched_exact"`
	MatchedNameKey int      `json:"matched_name_key"`
	Unmatched      []string `json:"unmatched"`
}

func compare(catalog, incoming []string) joinReport {
	exact, _ := reconcile.Index(catalog, func(s string) string { return s }, reconcile.ExactKey)
	normalized, _ := reconcile.Index(catalog, func(s string) string { return s }, reconcile.NameKey)

	report := joinReport{Incoming: len(incoming)}
	for _, name := range incoming {
		if _, ok := exact[reconcile.ExactKey(name)]; ok {
			report.MatchedExact++
		}
		if _, ok := normalized[reconcile.NameKey(name)]; ok {
			report.MatchedNameKey++
			continue
		}
		report.Unmatched = append(report.Unmatched, name)
	}
	sort.Strings(report.Unmatched)
	return report
}

func (r joinReport) print() {
	fmt.Printf("Incoming: %d, exact matches: %d, name-key matches: %d\n", r.Incoming, r.MatchedExact, r.MatchedNameKey)
	for _, name := range r.Unmatched {
		fmt.Printf("  UNMATCHED: %q\n", name)
	}
}

// staleCandidates lists catalog attractions no wait-time record reaches.
func staleCandidates(basic models.BasicData, waitNames []string) []string {
	reached, _ := reconcile.Index(waitNames, func(s string) string { return s }, reconcile.NameKey)
	var stale []string
	for _, a := range basic.Attractions {
		if _, ok := reached[reconcile.NameKey(a.Name)]; !ok {
			stale = append(stale, a.Name)
		}
	}
	sort.Strings(stale)
	return stale
}
