package gcalendar

import "time"

// CreateAllDayEventRequest is the input for creating an all-day event.
// Only the calendar date matters; all-day events carry no clock time.
type CreateAllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
	Date        time.Time
}
