// Package integrity reports on the health of the backends the park sync
// engine reads from. It never touches the park caches.
//
// # Checks Provided
//
//   - Catalog: the park's catalog object exists in the storage bucket.
//   - Schema: the show_schedules table matches its gorm model (columns, types).
//   - Sources: each configured source answers for the park within the probe timeout.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/catalog : Runs the catalog check (?park=, defaults to the active park).
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/sources : Probes the sources (?park=, defaults to the active park).
package integrity
