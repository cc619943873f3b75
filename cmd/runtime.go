package cmd

import (
	"context"
	"fmt"
	"time"

	"park-sync/core/config"
	"park-sync/core/database"
	"park-sync/core/storage"
	"park-sync/feature/integrity"
	"park-sync/feature/park"
	"park-sync/feature/park/notify"
	"park-sync/feature/park/source"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const probeTimeout = 5 * time.Second

// runtime holds the backends opened for one process.
type runtime struct {
	feature   *park.Feature
	integrity *integrity.Feature
	db        *gorm.DB
	redis     *redis.Client
}

// newRuntime opens the backends the configured sources need and wires the
// park feature on top of them. Optional backends that fail to answer are
// logged; the sources built on them will fail per cycle instead.
func newRuntime(cfg *config.Config, logg *zap.Logger) (*runtime, error) {
	rt := &runtime{}
	deps := source.Deps{StorageConfig: cfg.Storage}

	if cfg.Sources.Basic == config.DriverStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("creating storage client: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		cancel()
		switch {
		case err != nil:
			logg.Warn("Storage not reachable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		case !exists:
			logg.Warn("Catalog bucket does not exist", zap.String("bucket", cfg.Storage.Bucket))
		}
		deps.Storage = client
	}

	if cfg.Sources.Schedules == config.DriverDatabase {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting schedule database: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		if err := source.NewDatabaseSchedules(db).Verify(ctx); err != nil {
			logg.Warn("Schedule table check failed", zap.Error(err))
		}
		cancel()
		rt.db = db
		deps.DB = db
	}

	sources, err := source.Build(cfg, deps)
	if err != nil {
		rt.Close()
		return nil, err
	}

	bus := notify.NewBus(logg)
	if cfg.Notify.Enabled() {
		rt.redis = notify.NewRedisClient(cfg.Notify.RedisAddr, cfg.Notify.RedisPassword, cfg.Notify.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		if err := rt.redis.Ping(ctx).Err(); err != nil {
			logg.Warn("Redis not reachable, signals stay in-process", zap.String("addr", cfg.Notify.RedisAddr), zap.Error(err))
		}
		cancel()
		notify.NewRedisBridge(rt.redis, cfg.Notify.ChannelPrefix, logg).Attach(bus)
	}

	loc, err := cfg.Sync.Location()
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.feature = park.NewFeature(park.Options{
		Sources:       sources,
		Bus:           bus,
		Location:      loc,
		DeltaInterval: cfg.Sync.DeltaInterval(),
		FetchTimeout:  cfg.Sync.FetchTimeout(),
		ActivePark:    cfg.Sync.ActivePark,
		Logger:        logg,
	})
	rt.integrity = integrity.NewFeature(integrity.Options{
		Storage:       deps.Storage,
		StorageConfig: cfg.Storage,
		DB:            rt.db,
		Sources:       sources,
		ActivePark:    rt.feature.Service().ActivePark,
		ProbeTimeout:  cfg.Sync.FetchTimeout(),
		Logger:        logg,
	})
	return rt, nil
}

// Close releases the backends.
func (rt *runtime) Close() {
	if rt.redis != nil {
		_ = rt.redis.Close()
	}
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
