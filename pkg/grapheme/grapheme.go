package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split breaks s into grapheme clusters in order.
// An empty string yields a nil slice.
func Split(s string) []string {
	if s == "" {
		return nil
	}

	clusters := make([]string, 0, len(s))
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Join concatenates clusters without a separator.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// IsSingle reports whether s is exactly one grapheme cluster.
func IsSingle(s string) bool {
	if s == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return rest == ""
}
