// Package filter holds the pure moderation check applied to outgoing messages.
package filter

import "strings"

// Contains reports whether any whitespace-separated token of text equals one
// of the listed words, ignoring case. The match is token-exact: a listed word
// embedded inside a larger token does not count.
func Contains(text string, words []string) bool {
	if len(words) == 0 {
		return false
	}

	blocked := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		blocked[strings.ToLower(w)] = struct{}{}
	}

	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := blocked[token]; ok {
			return true
		}
	}
	return false
}
