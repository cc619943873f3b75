// Package fallback derives cache entries directly from basic-data records.
// It is used when a full sync payload cannot be normalized.
package fallback
