package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-sync/core/config"
	"park-sync/core/storage/mocks"
	"park-sync/feature/park/source"
)

func TestBuild(t *testing.T) {
	cfg := &config.Config{}
	cfg.Sources = config.SourcesConfig{Basic: config.DriverHTTP, Schedules: config.DriverHTTP}

	set, err := source.Build(cfg, source.Deps{})
	require.NoError(t, err)
	assert.IsType(t, &source.HTTPClient{}, set.Basic)
	assert.IsType(t, &source.HTTPClient{}, set.Schedules)

	cfg.Sources.Basic = config.DriverStorage
	_, err = source.Build(cfg, source.Deps{})
	assert.ErrorIs(t, err, source.ErrNotConfigured)

	set, err = source.Build(cfg, source.Deps{Storage: new(mocks.Client)})
	require.NoError(t, err)
	assert.IsType(t, &source.StorageCatalog{}, set.Basic)
	assert.IsType(t, &source.HTTPClient{}, set.WaitTimes)

	cfg.Sources.Schedules = config.DriverDatabase
	_, err = source.Build(cfg, source.Deps{Storage: new(mocks.Client)})
	assert.ErrorIs(t, err, source.ErrNotConfigured)

	db, _ := setupMockDB(t)
	set, err = source.Build(cfg, source.Deps{Storage: new(mocks.Client), DB: db})
	require.NoError(t, err)
	assert.IsType(t, &source.DatabaseSchedules{}, set.Schedules)

	cfg.Sources.Schedules = "ftp"
	_, err = source.Build(cfg, source.Deps{})
	assert.Error(t, err)
}
