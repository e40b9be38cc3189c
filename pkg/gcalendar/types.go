package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64 // Zero lists every page
}

// Event is a simplified representation of a Google Calendar event.
// For all-day events StartTime and EndTime are UTC midnights and EndTime is
// exclusive, as returned by the API.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
