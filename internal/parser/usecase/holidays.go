package usecase

import (
	"strings"
	"time"

	"maintenance-task-parser/pkg/datemath"
)

// holiday maps trigger names to a year-specific resolver. Floating holidays
// are recomputed per year, so a roll-forward re-resolves rather than adding
// 365 days.
type holiday struct {
	names   []string
	resolve func(p *datemath.Parser, year int) time.Time
}

func fixedDate(month time.Month, day int) func(p *datemath.Parser, year int) time.Time {
	return func(p *datemath.Parser, year int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, p.Location())
	}
}

func nthWeekday(month time.Month, wd time.Weekday, n int) func(p *datemath.Parser, year int) time.Time {
	return func(p *datemath.Parser, year int) time.Time {
		return p.NthWeekdayOfMonth(year, month, wd, n)
	}
}

var holidays = []holiday{
	{names: []string{"thanksgiving"}, resolve: nthWeekday(time.November, time.Thursday, 4)},
	{names: []string{"christmas", "xmas"}, resolve: fixedDate(time.December, 25)},
	{names: []string{"new year"}, resolve: fixedDate(time.January, 1)},
	{names: []string{"valentine", "valentines"}, resolve: fixedDate(time.February, 14)},
	{names: []string{"labor day"}, resolve: nthWeekday(time.September, time.Monday, 1)},
	{names: []string{"memorial day"}, resolve: func(p *datemath.Parser, year int) time.Time {
		return p.LastWeekdayOfMonth(year, time.May, time.Monday)
	}},
	{names: []string{"presidents day", "president's day", "presidents' day"}, resolve: nthWeekday(time.February, time.Monday, 3)},
	{names: []string{"mlk day", "mlk", "martin luther king"}, resolve: nthWeekday(time.January, time.Monday, 3)},
	{names: []string{"columbus day"}, resolve: nthWeekday(time.October, time.Monday, 2)},
	{names: []string{"veterans day", "veteran's day"}, resolve: fixedDate(time.November, 11)},
}

// resolveHoliday matches a holiday name in the text. Unqualified holidays
// resolve within the current year and roll forward once the date has
// passed; a "next" qualifier forces next year unconditionally.
func (uc *implUseCase) resolveHoliday(text string, now time.Time) (time.Time, bool) {
	lowered := strings.ToLower(text)

	for _, h := range holidays {
		for _, name := range h.names {
			if wholeWordIndex(lowered, name) < 0 {
				continue
			}

			year := now.Year()
			if wholeWordIndex(lowered, "next "+name) >= 0 {
				return h.resolve(uc.dateMath, year+1), true
			}

			d := h.resolve(uc.dateMath, year)
			if d.Before(uc.dateMath.StartOfDay(now)) {
				d = h.resolve(uc.dateMath, year+1)
			}
			return d, true
		}
	}
	return time.Time{}, false
}
