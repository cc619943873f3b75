// Package utils provides common utility functions for the park-sync service.
// It includes loose type conversion helpers used when decoding upstream records
// whose field types vary between sources (numeric ids vs string ids, numeric
// strings, integer flags).
package utils
