package common

import "strings"

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Plural returns singular when n is exactly one and plural otherwise.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}

	return plural
}
