package gcalendar

import "time"

// DateLayout is the date format the Calendar API uses for all-day events.
const DateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time // exclusive when AllDay is set
	AllDay      bool
	Timezone    string // e.g. "Europe/Madrid"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Query      string // free text filter
}

// Credentials locates the files NewClient reads.
type Credentials struct {
	Path      string // service account or OAuth desktop client JSON
	TokenPath string // OAuth token written by the calendar auth command
}
