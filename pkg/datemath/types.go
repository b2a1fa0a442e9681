package datemath

import "time"

// Match is one fuzzy hit found by SearchDates: the matched source text and
// the calendar date it resolved to.
type Match struct {
	Text string
	Date time.Time
}
