// Package store is the in-memory cache of canonical park records.
//
// Each park owns two tables, queue times (attractions) and performance times,
// both keyed by item id. Tables are created on the first write for a park.
// Writes go through MutateAttractions/MutatePerformances, which hand the
// caller the live table under the store lock; passes merge into existing
// entries (Table.Ensure) so fields owned by other passes survive. Reads
// return copies and report a missing park or item as "not found" (false),
// never as an error.
package store
