package source

import (
	"fmt"

	"gorm.io/gorm"

	"park-sync/core/config"
	"park-sync/core/storage"
)

// Deps holds the optional backends sources may be built on.
type Deps struct {
	Storage       storage.Client
	StorageConfig storage.Config
	DB            *gorm.DB
}

// Build selects a source per kind from cfg. Wait times always use the HTTP upstream.
func Build(cfg *config.Config, deps Deps) (Set, error) {
	client := NewHTTPClient(cfg.Upstream)
	set := Set{Basic: client, WaitTimes: client, Schedules: client}

	switch cfg.Sources.Basic {
	case config.DriverHTTP:
	case config.DriverStorage:
		if deps.Storage == nil {
			return Set{}, fmt.Errorf("basic data from storage: %w", ErrNotConfigured)
		}
		set.Basic = NewStorageCatalog(deps.Storage, deps.StorageConfig)
	default:
		return Set{}, fmt.Errorf("unknown basic data driver %q", cfg.Sources.Basic)
	}

	switch cfg.Sources.Schedules {
	case config.DriverHTTP:
	case config.DriverDatabase:
		if deps.DB == nil {
			return Set{}, fmt.Errorf("schedules from database: %w", ErrNotConfigured)
		}
		set.Schedules = NewDatabaseSchedules(deps.DB)
	default:
		return Set{}, fmt.Errorf("unknown schedule driver %q", cfg.Sources.Schedules)
	}

	return set, nil
}
