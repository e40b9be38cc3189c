package ics

import (
	"time"

	"gantt-timeline/pkg/timeline"
)

// Event is a normalized VEVENT. Recurrences are not expanded yet.
type Event struct {
	UID     string
	Summary string

	Start  time.Time
	End    time.Time // exclusive, as in DTEND
	AllDay bool

	RRule   string
	ExDates []time.Time
}

// Occurrence is one concrete instance of an Event.
type Occurrence struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time // exclusive
	AllDay  bool
}

// ExpandConfig bounds recurrence expansion.
type ExpandConfig struct {
	// From and To are the inclusive window occurrences must overlap.
	From time.Time
	To   time.Time

	// MaxOccurrences caps the instances produced per event.
	// Zero selects DefaultMaxOccurrences.
	MaxOccurrences int
}

// ExpandResult holds the expanded occurrences in input order. Truncated
// lists the UIDs whose expansion hit MaxOccurrences.
type ExpandResult struct {
	Occurrences []Occurrence
	Truncated   []string
}

// Dates returns the inclusive first and last calendar day covered by the
// occurrence in loc. All-day dates are taken as written.
func (o Occurrence) Dates(loc *time.Location) (timeline.Date, timeline.Date) {
	if o.AllDay {
		loc = time.UTC
	}
	start := timeline.DateOf(o.Start.In(loc))
	if !o.End.After(o.Start) {
		return start, start
	}

	end := o.End.In(loc)
	last := timeline.DateOf(end)
	// DTEND at midnight belongs to the previous day.
	if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
		last = last.AddDays(-1)
	}
	if last.Before(start) {
		return start, start
	}
	return start, last
}
