package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"park-sync/core/config"
	"park-sync/core/logger"
	"park-sync/feature/park/models"
	parksync "park-sync/feature/park/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncDelta bool

// syncCmd runs one sync cycle and prints the resulting caches.
var syncCmd = &cobra.Command{
	Use:   "sync <parkId>",
	Short: "Run one sync cycle for a park",
	Long: `Fetches the configured sources for one park, applies a single full sync
(or a delta sync with --delta) to an empty cache and prints the report and the
resulting caches as JSON. A delta sync only updates entries that already exist,
so on its own it reports every incoming record as unmatched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.Sync.ActivePark = args[0]

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		rt, err := newRuntime(cfg, logg)
		if err != nil {
			return err
		}
		defer rt.Close()

		var report *parksync.Report
		if syncDelta {
			report, err = rt.feature.Coordinator().DeltaSync(context.Background(), args[0])
		} else {
			report, err = rt.feature.Service().ForceFullSync(context.Background())
		}
		if err != nil {
			return err
		}
		logg.Debug("Sync finished", zap.String("cycle_id", report.CycleID))

		out := struct {
			Report       *parksync.Report                   `json:"report"`
			Attractions  map[string]models.AttractionEntry  `json:"attractions"`
			Performances map[string]models.PerformanceEntry `json:"performances"`
		}{
			Report:       report,
			Attractions:  rt.feature.Service().QueueTimes(),
			Performances: rt.feature.Service().Performances(),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDelta, "delta", false, "run a delta sync instead of a full sync")
	RootCmd.AddCommand(syncCmd)
}
