package steptype

import (
	"strings"
	"unicode"
)

// minSuggestScore is the similarity below which no suggestion is made.
const minSuggestScore = 0.75

// Suggest returns the known type whose name is closest to raw, for use in
// diagnostics about unrecognized declarations. Names are compared case-folded
// with separators removed.
func Suggest(raw string) (Type, bool) {
	norm := normalizeName(raw)
	if norm == "" {
		return Unspecified, false
	}

	best, bestScore := Unspecified, 0.0

	for name, t := range byName {
		if t == Unspecified {
			continue
		}

		score := similarity(norm, normalizeName(name))
		if score > bestScore || (score == bestScore && t < best) {
			best, bestScore = t, score
		}
	}

	if bestScore < minSuggestScore {
		return Unspecified, false
	}

	return best, true
}

func normalizeName(s string) string {
	var sb strings.Builder

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// similarity is 1 minus the edit distance scaled by the longer length.
func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(editDistance(a, b))/float64(longest)
}

// editDistance is the Levenshtein distance between a and b, computed with two
// rolling rows.
func editDistance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
