// Package textnorm normalizes free-text user input before routing and matching.
package textnorm

import "strings"

// Normalize lowercases and trims s. Every consumer that compares user text
// against catalog text goes through here so both sides fold the same way.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsAny reports whether text contains any of the phrases as a substring.
// Both sides are expected to be normalized already.
func ContainsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}
