package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"maintenance-task-parser/pkg/datemath"
)

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun`

var (
	endOfMonthRE = regexp.MustCompile(`(?i)\bend of (?:this|the|the current|current) month\b`)

	explicitDateRE = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

	byWeekdayRE = regexp.MustCompile(`(?i)\bby\s+(` + weekdayAlt + `)\b`)
	afterNextRE = regexp.MustCompile(`(?i)\bafter\s+next\s+(` + weekdayAlt + `)\b`)
	beforeRefRE = regexp.MustCompile(`(?i)\bbefore\s+(next|last)\s+(` + weekdayAlt + `)\b`)
)

// vaguePhrase marks date hits too vague to trust ("the other day").
const vaguePhrase = "other day"

// resolveDate runs the strategy cascade until one produces a date. Later
// strategies are strictly fuzzier, so the order must not be rearranged.
// Several offsets here are deliberate oddities carried over from the
// long-standing behavior of this pipeline; see the cascade tests.
func (uc *implUseCase) resolveDate(ctx context.Context, text string, now time.Time) (*time.Time, error) {
	// 1. Fixed end-of-month deadline phrasing.
	if endOfMonthRE.MatchString(text) {
		d := uc.dateMath.EndOfMonth(now)
		return &d, nil
	}

	// 2. Named holidays, with an optional "next" qualifier.
	if d, ok := uc.resolveHoliday(text, now); ok {
		return &d, nil
	}

	// 3. Guard: without a single date-like token the fuzzy strategies
	// below produce false positives on ordinary sentences. Bail out.
	if !datemath.ContainsDateCue(text) {
		return nil, nil
	}

	// 4. Explicit day-of-month plus month name.
	if m := explicitDateRE.FindString(text); m != "" {
		if d, err := uc.dateMath.ParsePhrase(m, now, false); err == nil {
			return &d, nil
		}
	}

	// 5. "by <weekday>": nearest future occurrence.
	if m := byWeekdayRE.FindStringSubmatch(text); m != nil {
		if wd, ok := datemath.WeekdayFromName(m[1]); ok {
			d := uc.dateMath.NextWeekday(now, wd)
			return &d, nil
		}
	}

	// 6. "after next <weekday>": next occurrence plus a week.
	if m := afterNextRE.FindStringSubmatch(text); m != nil {
		if wd, ok := datemath.WeekdayFromName(m[1]); ok {
			d := uc.dateMath.NextWeekday(now, wd).AddDate(0, 0, 7)
			return &d, nil
		}
	}

	// 7. "before next|last <weekday>": next occurrence shifted a week
	// forward or back depending on the qualifier.
	if m := beforeRefRE.FindStringSubmatch(text); m != nil {
		if wd, ok := datemath.WeekdayFromName(m[2]); ok {
			d := uc.dateMath.NextWeekday(now, wd)
			if strings.EqualFold(m[1], "next") {
				d = d.AddDate(0, 0, 7)
			} else {
				d = d.AddDate(0, 0, -7)
			}
			return &d, nil
		}
	}

	// 8. NER DATE entities, parsed preferring future interpretations.
	entities, err := uc.nlp.DateEntities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("date entity lookup failed: %w", err)
	}
	for _, ent := range entities {
		if strings.Contains(strings.ToLower(ent.Text), vaguePhrase) {
			continue
		}
		if d, perr := uc.dateMath.ParsePhrase(ent.Text, now, true); perr == nil {
			return &d, nil
		}
	}

	// 9. Fuzzy whole-text search.
	for _, m := range uc.dateMath.SearchDates(text, now) {
		if strings.Contains(strings.ToLower(m.Text), vaguePhrase) {
			continue
		}
		d := m.Date
		return &d, nil
	}

	return nil, nil
}
