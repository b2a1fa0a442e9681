package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date phrases to absolute calendar dates.
// Parsing is strict: a phrase that matches no known form returns an error
// rather than a silent fallback, so callers can chain fuzzier strategies.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	inDurationRE = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	isoDateRE    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	dayMonthRE   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+([a-z]+)\.?$`)
	monthDayRE   = regexp.MustCompile(`^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?$`)
)

const phraseTrimSet = " \t.,!?;:"

// ParsePhrase resolves a single date phrase relative to baseTime.
// When preferFuture is set, ambiguous day+month phrases that already passed
// this year resolve to next year instead.
func (p *Parser) ParsePhrase(phrase string, baseTime time.Time, preferFuture bool) (time.Time, error) {
	phrase = strings.Trim(strings.ToLower(phrase), phraseTrimSet)
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return time.Time{}, fmt.Errorf("empty date phrase")
	}

	switch phrase {
	case "today", "tonight":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.StartOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if m := isoDateRE.FindStringSubmatch(phrase); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, time.Month(month)) {
			return time.Time{}, fmt.Errorf("invalid calendar date %q", phrase)
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), nil
	}

	if m := inDurationRE.FindStringSubmatch(phrase); m != nil {
		return p.parseInDuration(m, baseTime)
	}

	if rest, ok := strings.CutPrefix(phrase, "next "); ok {
		if wd, found := WeekdayFromName(rest); found {
			return p.NextWeekday(baseTime, wd), nil
		}
		return time.Time{}, fmt.Errorf("unknown weekday: %q", rest)
	}

	if rest, ok := strings.CutPrefix(phrase, "last "); ok {
		if wd, found := WeekdayFromName(rest); found {
			return p.PrevWeekday(baseTime, wd), nil
		}
		return time.Time{}, fmt.Errorf("unknown weekday: %q", rest)
	}

	bare := strings.TrimPrefix(phrase, "this ")
	if wd, found := WeekdayFromName(bare); found {
		return p.NextWeekday(baseTime, wd), nil
	}

	if t, err := p.parseDayAndMonth(phrase, baseTime, preferFuture); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date phrase: %q", phrase)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(m []string, baseTime time.Time) (time.Time, error) {
	amount, _ := strconv.Atoi(m[1])
	switch {
	case strings.HasPrefix(m[2], "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(m[2], "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(m[2], "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
	return baseTime, fmt.Errorf("unknown time unit: %q", m[2])
}

// parseDayAndMonth handles "15th of july", "4 july" and "july 4".
func (p *Parser) parseDayAndMonth(phrase string, baseTime time.Time, preferFuture bool) (time.Time, error) {
	var dayStr, monthStr string
	if m := dayMonthRE.FindStringSubmatch(phrase); m != nil {
		dayStr, monthStr = m[1], m[2]
	} else if m := monthDayRE.FindStringSubmatch(phrase); m != nil {
		monthStr, dayStr = m[1], m[2]
	} else {
		return time.Time{}, fmt.Errorf("not a day+month phrase: %q", phrase)
	}

	month, ok := MonthFromName(monthStr)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month: %q", monthStr)
	}
	day, _ := strconv.Atoi(dayStr)
	if day < 1 || day > DaysInMonth(baseTime.Year(), month) {
		return time.Time{}, fmt.Errorf("day %d out of range for %s", day, month)
	}

	resolved := time.Date(baseTime.Year(), month, day, 0, 0, 0, 0, p.location)
	if preferFuture && resolved.Before(p.StartOfDay(baseTime)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return resolved, nil
}

// NextWeekday returns the nearest strictly-future occurrence of the weekday.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// PrevWeekday returns the nearest strictly-past occurrence of the weekday.
func (p *Parser) PrevWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysSince := int(baseTime.Weekday() - target)
	if daysSince <= 0 {
		daysSince += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, -daysSince))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// Location exposes the parser's timezone for date construction by callers.
func (p *Parser) Location() *time.Location {
	return p.location
}
