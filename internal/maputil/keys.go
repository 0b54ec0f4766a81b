// Package maputil provides small helpers for working with maps.
package maputil

import (
	"slices"
)

// SortedKeys returns the keys of m in sorted order. A nil or empty map
// yields an empty, non-nil slice, which keeps callers' reports stable.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
