// Package keywords derives validation search keywords from an idea's title
// and tags. The list feeds the trend synthesizer when the generator did not
// supply keywords of its own.
package keywords

import "strings"

// MaxKeywords caps the derived keyword list.
const MaxKeywords = 5

// stopWords are generic title words that make poor search keywords.
var stopWords = map[string]bool{
	"saas":     true,
	"tool":     true,
	"platform": true,
	"app":      true,
}

// Derive builds up to MaxKeywords search keywords from a title and tags.
// Title words longer than three characters are expanded with software/tool/
// platform suffixes, then each tag with software/automation suffixes.
func Derive(title string, tags []string) []string {
	var derived []string

	for _, word := range strings.Fields(strings.ToLower(title)) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		derived = append(derived, word+" software", word+" tool", word+" platform")
	}

	for _, tag := range tags {
		lower := strings.ToLower(tag)
		derived = append(derived, lower+" software", lower+" automation")
	}

	if len(derived) > MaxKeywords {
		derived = derived[:MaxKeywords]
	}
	return derived
}
