package usecase

import (
	"regexp"
	"strings"
)

// wholeWordIndex returns the byte offset of the first whole-word occurrence
// of phrase in the already-lowercased text, or -1. Multi-word phrases match
// across single spaces.
func wholeWordIndex(lowered, phrase string) int {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(phrase)) + `\b`)
	if loc := re.FindStringIndex(lowered); loc != nil {
		return loc[0]
	}
	return -1
}

// splitLines returns the trimmed non-blank lines of the input, in order.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func strPtr(s string) *string {
	return &s
}
