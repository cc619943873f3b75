package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"park-sync/core/config"
	"park-sync/core/loader"
	"park-sync/core/logger"
	"park-sync/core/middleware/auth"
	"park-sync/core/middleware/rayid"
	parksync "park-sync/feature/park/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the park sync server",
	Long:  `Starts the HTTP server and, when autostart is enabled, the sync scheduler for the active park.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Open backends and wire the park feature
		rt, err := newRuntime(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize sources", zap.Error(err))
		}
		defer rt.Close()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		})

		mgr := loader.NewManager()
		mgr.Register(rt.feature)
		mgr.Register(rt.integrity)

		// RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not set, endpoints are unauthenticated")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Scheduler
		if cfg.Sync.Autostart {
			go func() {
				if _, err := rt.feature.Service().StartUpdates(context.Background()); err != nil && !errors.Is(err, parksync.ErrNoActivePark) {
					logg.Error("Initial sync failed", zap.Error(err))
				}
			}()
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := rt.feature.Scheduler().Shutdown(ctx); err != nil {
			logg.Warn("Scheduler did not stop in time", zap.Error(err))
		}
		_ = app.ShutdownWithContext(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
