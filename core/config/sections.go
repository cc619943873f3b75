package config

import (
	"fmt"
	"time"
)

// Source driver names.
const (
	DriverHTTP     = "http"
	DriverStorage  = "storage"
	DriverDatabase = "database"
)

// UpstreamConfig holds configuration for the park data HTTP API.
type UpstreamConfig struct {
	// BaseURL is the root of the park data API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8090"`
	// ApiKey is sent as X-API-Key on every upstream request.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the per-request timeout, defaulting to 10 seconds.
func (c UpstreamConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SourcesConfig selects the backend for each upstream data kind.
// Wait times always come from the HTTP upstream.
type SourcesConfig struct {
	// Basic is the driver for attraction/performance catalogs (http, storage).
	Basic string `mapstructure:"basic" default:"http"`
	// Schedules is the driver for show schedules (http, database).
	Schedules string `mapstructure:"schedules" default:"http"`
}

// Validate rejects unknown drivers.
func (c SourcesConfig) Validate() error {
	switch c.Basic {
	case DriverHTTP, DriverStorage:
	default:
		return fmt.Errorf("invalid basic data source driver: %q", c.Basic)
	}
	switch c.Schedules {
	case DriverHTTP, DriverDatabase:
	default:
		return fmt.Errorf("invalid schedule source driver: %q", c.Schedules)
	}
	return nil
}

// SyncConfig holds configuration for the sync scheduler.
type SyncConfig struct {
	// ActivePark is the park refreshed at startup. Empty leaves the scheduler idle.
	ActivePark string `mapstructure:"active_park" default:""`
	// DeltaIntervalSeconds is the period of the recurring delta sync.
	DeltaIntervalSeconds int `mapstructure:"delta_interval_seconds" default:"60"`
	// FetchTimeoutSeconds bounds each source call in a cycle.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"15"`
	// Timezone is the park-local zone used for show time comparisons.
	Timezone string `mapstructure:"timezone" default:"Local"`
	// Autostart runs the scheduler when the server starts.
	Autostart bool `mapstructure:"autostart" default:"true"`
}

// Validate checks interval bounds and the timezone name.
func (c SyncConfig) Validate() error {
	if c.DeltaIntervalSeconds <= 0 {
		return fmt.Errorf("invalid delta interval: %d", c.DeltaIntervalSeconds)
	}
	if c.FetchTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid fetch timeout: %d", c.FetchTimeoutSeconds)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// DeltaInterval returns the delta sync period.
func (c SyncConfig) DeltaInterval() time.Duration {
	return time.Duration(c.DeltaIntervalSeconds) * time.Second
}

// FetchTimeout returns the per-source timeout.
func (c SyncConfig) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Location resolves the configured timezone.
func (c SyncConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// NotifyConfig holds configuration for publishing change signals to Redis.
type NotifyConfig struct {
	// RedisAddr enables the Redis bridge when set (host:port).
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// RedisPassword authenticates against Redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB selects the Redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// ChannelPrefix prefixes every published channel name.
	ChannelPrefix string `mapstructure:"channel_prefix" default:"park"`
}

// Enabled reports whether the Redis bridge should be started.
func (c NotifyConfig) Enabled() bool {
	return c.RedisAddr != ""
}
