// Package classify tags free-text brand and processor strings with a coarse
// family drawn from a fixed, ordered vocabulary.
package classify

import (
	"strings"

	"mobilecli/pkg/contracts/domain"
)

// FirstMatch returns the first family in the vocabulary that occurs as a
// case-insensitive substring of text, or "Unknown" when the text is missing
// or no family matches. Vocabulary order decides ties: the first hit wins,
// not the longest.
func FirstMatch(text string, vocabulary []string) string {
	if strings.TrimSpace(text) == "" {
		return domain.UnknownLabel
	}
	lower := strings.ToLower(text)
	for _, family := range vocabulary {
		if strings.Contains(lower, strings.ToLower(family)) {
			return family
		}
	}
	return domain.UnknownLabel
}
