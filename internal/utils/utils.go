// Package utils contains general helper functions used across the lstree tool.
package utils

import (
	"sort"
	"strings"
)

// IsHiddenName reports whether a base name is hidden under the host convention
// of a leading dot. The special entries "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, HiddenNamePrefix)
}

// SortEntryNames orders directory entry names bytewise in place.
func SortEntryNames(entryNames []string) {
	sort.Strings(entryNames)
}
