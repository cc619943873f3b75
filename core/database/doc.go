// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections based on
// the application's configuration. The database is optional: it is only
// needed when show schedules are read from the park operations database
// instead of the HTTP upstream.
//
// # Schema Inspection
//
// MissingColumns lets a source verify at startup that the table it reads
// carries every column it maps, so a schema drift is reported once instead of
// failing every sync cycle.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(ctx, db, "show_schedules", []string{"park_id"})
package database
