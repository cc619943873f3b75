// Package sync keeps the active park's caches fresh.
//
// A Coordinator runs one cycle: it fans out to the upstream sources with
// reconcile.SettleAll, so a failed or timed-out source only empties its own
// payload, then normalizes and writes the result and emits change signals.
// A full cycle reads basic data, wait times and schedules. A delta cycle
// reads only wait times and schedules and never creates entries.
//
// A Scheduler owns the timing: Start runs a full cycle and arms a delta
// ticker, Stop disarms it, Resume re-arms only when idle and ForceFullSync
// runs a full cycle on demand.
package sync
