package datemath

import (
	"regexp"
	"strings"
	"time"
)

// maxSearchWindow is the widest word window tried when scanning free text;
// three words covers forms like "15th of July" and "the other day".
const maxSearchWindow = 3

var (
	wordRE     = regexp.MustCompile(`\S+`)
	vagueDayRE = regexp.MustCompile(`^(?:the\s+)?other\s+day$`)
)

// SearchDates scans free text for date-like substrings and resolves each to
// a calendar date. Windows of up to maxSearchWindow words are tried longest
// first; a hit consumes its words so overlapping windows cannot double-match.
func (p *Parser) SearchDates(text string, baseTime time.Time) []Match {
	positions := wordRE.FindAllStringIndex(text, -1)

	var matches []Match
	for i := 0; i < len(positions); {
		consumed := 0
		for n := maxSearchWindow; n >= 1; n-- {
			if i+n > len(positions) {
				continue
			}
			candidate := strings.Trim(text[positions[i][0]:positions[i+n-1][1]], phraseTrimSet)

			if vagueDayRE.MatchString(strings.ToLower(candidate)) {
				// Colloquial "the other day": some recent day, kept so
				// callers can decide whether vague hits count.
				matches = append(matches, Match{Text: candidate, Date: p.StartOfDay(baseTime.AddDate(0, 0, -2))})
				consumed = n
				break
			}

			if t, err := p.ParsePhrase(candidate, baseTime, false); err == nil {
				matches = append(matches, Match{Text: candidate, Date: t})
				consumed = n
				break
			}
		}
		if consumed == 0 {
			i++
			continue
		}
		i += consumed
	}
	return matches
}

// ContainsDateCue reports whether the text holds at least one token that
// could start a date interpretation: a weekday or month name, "next",
// "last", "tomorrow", "yesterday", or an ordinal number.
func ContainsDateCue(text string) bool {
	lowered := strings.ToLower(text)
	for _, word := range wordRE.FindAllString(lowered, -1) {
		word = strings.Trim(word, phraseTrimSet)
		switch word {
		case "next", "last", "tomorrow", "yesterday":
			return true
		}
		if _, ok := WeekdayFromName(word); ok {
			return true
		}
		if _, ok := MonthFromName(word); ok {
			return true
		}
	}
	return ordinalRE.MatchString(lowered)
}

var ordinalRE = regexp.MustCompile(`\b\d+(?:st|nd|rd|th)\b`)
