// Package config provides configuration management for park-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared with `default:"..."` struct tags
// next to each field and registered by reflection, so every key can be
// overridden by its upper-cased, underscore-joined environment name
// (sync.delta_interval_seconds -> SYNC_DELTA_INTERVAL_SECONDS).
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Log: logging level and format
//   - Upstream: park data API base URL, key and timeout
//   - Sources: driver per data kind (http, storage, database)
//   - Storage: S3/MinIO credentials, bucket and catalog prefix
//   - Database: MySQL connection details for the schedule table
//   - Sync: active park, delta interval, fetch timeout, timezone
//   - Notify: optional Redis bridge for change signals
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.DeltaInterval())
package config
