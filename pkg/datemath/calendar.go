package datemath

import (
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sep":       time.September,
	"sept":      time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

// WeekdayFromName maps a full or abbreviated weekday name to time.Weekday.
func WeekdayFromName(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSuffix(name, "."))]
	return wd, ok
}

// MonthFromName maps a full or abbreviated month name to time.Month.
func MonthFromName(name string) (time.Month, bool) {
	m, ok := monthNames[strings.ToLower(strings.TrimSuffix(name, "."))]
	return m, ok
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last calendar day of t's month, at midnight.
func (p *Parser) EndOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), DaysInMonth(t.Year(), t.Month()), 0, 0, 0, 0, p.location)
}

// NthWeekdayOfMonth returns the n-th occurrence (1-based) of the weekday in
// the given month, e.g. the 4th Thursday of November.
func (p *Parser) NthWeekdayOfMonth(year int, month time.Month, wd time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	offset := int(wd-first.Weekday()+7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// LastWeekdayOfMonth returns the final occurrence of the weekday in the month,
// e.g. the last Monday of May.
func (p *Parser) LastWeekdayOfMonth(year int, month time.Month, wd time.Weekday) time.Time {
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, p.location)
	offset := int(last.Weekday()-wd+7) % 7
	return last.AddDate(0, 0, -offset)
}
