// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package runner

// suggest returns the catalog name closest to the unknown input, or ""
// if nothing is close enough. "Close enough" means an edit distance of
// at most 3, which catches common typos (transpositions, dropped
// characters, extra characters).
func (c *Catalog) suggest(unknown string) string {
	bestName := ""
	bestDistance := 4 // threshold: only suggest if distance <= 3

	for _, e := range c.entries {
		distance := levenshtein(unknown, e.spec.Name)
		if distance < bestDistance {
			bestDistance = distance
			bestName = e.spec.Name
		}
	}

	return bestName
}

// levenshtein computes the Levenshtein edit distance between two
// strings: the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one into the other.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Use a single row of the distance matrix, updated in place.
	// This is O(min(m,n)) space instead of O(m*n).
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, min(insertion, substitution))
		}

		previous = current
	}

	return previous[len(a)]
}
