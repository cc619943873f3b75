package reconcile

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// JoinKey derives the key used to match records across sources that do not
// share an identifier scheme. Swapping the JoinKey changes the join strategy
// without touching the passes that use it.
type JoinKey func(value string) string

// NameKey matches records by display name. Names are NFKC-normalized,
// trimmed, inner whitespace is collapsed and letters are lower-cased, so that
// full-width and half-width variants of the same name join.
func NameKey(value string) string {
	value = norm.NFKC.String(value)
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// ExactKey matches records by their untouched value.
func ExactKey(value string) string {
	return value
}

// Index builds a lookup table keyed by key(name(item)). Items with an empty
// key are skipped and counted. When two items share a key the later one wins.
func Index[T any](items []T, name func(T) string, key JoinKey) (map[string]T, int) {
	index := make(map[string]T, len(items))
	skipped := 0
	for _, item := range items {
		k := key(name(item))
		if k == "" {
			skipped++
			continue
		}
		index[k] = item
	}
	return index, skipped
}
