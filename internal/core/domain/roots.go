package domain

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SameRoots reports whether a and b hold the same set of roots, regardless of order.
func SameRoots(a, b []string) bool {
	return slices.Equal(normalizeRoots(a), normalizeRoots(b))
}

// RootsFingerprint returns an order-independent digest of a root set.
func RootsFingerprint(roots []string) string {
	h := xxhash.New()
	for _, r := range normalizeRoots(roots) {
		_, _ = h.WriteString(r)
		_, _ = h.WriteString("\x00")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func normalizeRoots(roots []string) []string {
	set := slices.Clone(roots)
	slices.Sort(set)
	return slices.Compact(set)
}
