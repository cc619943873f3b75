// Package normalize interprets raw park payloads into canonical cache entries.
//
// It owns the display rules (wait and countdown color buckets, closed and
// ended-for-today labels, next-show selection) and the passes that merge
// basic data, wait times and schedules into the store. Records from the wait
// and schedule sources carry no id, so they are joined to cached entries by
// a reconcile.JoinKey over the display name.
package normalize
