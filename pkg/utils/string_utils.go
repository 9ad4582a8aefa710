package utils

import "strings"

// ContainsAny reports whether s contains any of the keywords, ignoring case.
func ContainsAny(s string, keywords ...string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
