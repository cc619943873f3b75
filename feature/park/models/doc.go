// Package models defines the raw and canonical records of the park sync engine.
//
// Raw records (RawAttraction, RawPerformance, WaitTimeRecord, ScheduleRecord,
// RawShowTime) are one type per upstream source. Their decoders absorb the
// field-name differences between sources (id vs attractionId, name vs title,
// waitTime vs waitMinutes, ...), so later stages never probe for field
// presence. Values whose meaning depends on sentinels (wait -1, status text in
// several languages) are kept raw and interpreted by the normalizer.
//
// Canonical records (AttractionEntry, PerformanceEntry) are what the cache
// stores and the API serves.
package models
