package integrity

import (
	"context"
	"errors"
	"strings"
	"time"

	"park-sync/core/storage"
	"park-sync/feature/integrity/checks"
	"park-sync/feature/park/source"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoPark is returned when no park was given and none is active.
	ErrNoPark = errors.New("no park given and no active park")
	// ErrStorageNotConfigured is returned by catalog checks without a storage client.
	ErrStorageNotConfigured = errors.New("storage not configured")
	// ErrDatabaseNotConfigured is returned by schema checks without a database.
	ErrDatabaseNotConfigured = errors.New("database not configured")
)

const defaultProbeTimeout = 10 * time.Second

// Options configures the integrity feature. Storage and DB may be nil.
type Options struct {
	Storage       storage.Client
	StorageConfig storage.Config
	DB            *gorm.DB
	Sources       source.Set
	// ActivePark supplies the default park for park-scoped checks.
	ActivePark   func() string
	ProbeTimeout time.Duration
	Logger       *zap.Logger
}

// Service handles integrity checks.
type Service struct {
	client     storage.Client
	storageCfg storage.Config
	db         *gorm.DB
	sources    source.Set
	activePark func() string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	s := &Service{
		client:     opts.Storage,
		storageCfg: opts.StorageConfig,
		db:         opts.DB,
		sources:    opts.Sources,
		activePark: opts.ActivePark,
		timeout:    opts.ProbeTimeout,
		logger:     opts.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.timeout <= 0 {
		s.timeout = defaultProbeTimeout
	}
	return s
}

// ResolvePark returns park, or the active park when park is blank.
func (s *Service) ResolvePark(park string) (string, error) {
	park = strings.TrimSpace(park)
	if park == "" && s.activePark != nil {
		park = s.activePark()
	}
	if park == "" {
		return "", ErrNoPark
	}
	return park, nil
}

// CheckCatalog verifies that park has a catalog object in the bucket.
func (s *Service) CheckCatalog(ctx context.Context, park string) (*checks.CatalogReport, error) {
	if s.client == nil {
		return nil, ErrStorageNotConfigured
	}
	return checks.CheckCatalog(ctx, s.client, s.storageCfg, park)
}

// CheckSchema verifies the schedule table against its model.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDatabaseNotConfigured
	}
	return checks.CheckSchema(ctx, s.db, source.ShowScheduleRow{})
}

// CheckSources probes every configured source for park.
func (s *Service) CheckSources(ctx context.Context, park string) map[string]checks.SourceReport {
	return checks.CheckSources(ctx, s.sources, park, s.timeout)
}
