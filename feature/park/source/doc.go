// Package source fetches raw park data from upstream backends.
//
// Each data kind has its own interface so backends can be mixed: the HTTP
// API serves all three, a storage bucket can serve the basic catalog and a
// MySQL table can serve show schedules. Sources return errors as-is; the
// sync coordinator decides how a failure degrades.
package source
