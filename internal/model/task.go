package model

import (
	"time"

	"gantt-timeline/pkg/timeline"
)

// TaskSource records where a task came from.
type TaskSource string

const (
	SourceManual         TaskSource = "manual"
	SourceICS            TaskSource = "ics"
	SourceGoogleCalendar TaskSource = "google_calendar"
)

// Task is one row of the Gantt board.
type Task struct {
	ID        string        // UUID, stable across edits
	Name      string        // Display label, never empty
	Start     timeline.Date // First day of work
	End       timeline.Date // Last day of work, never before Start
	Progress  int           // Percentage in [0, 100]
	Color     string        // Bar color, e.g. "#4A90E2"
	Source    TaskSource
	SourceRef string // Upstream identifier (ICS UID / calendar event ID) for imported tasks
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Timeline converts the task to the layout engine's input.
func (t Task) Timeline() timeline.Task {
	return timeline.Task{
		ID:       t.ID,
		Name:     t.Name,
		Start:    t.Start,
		End:      t.End,
		Progress: t.Progress,
		Color:    t.Color,
	}
}

// TimelineTasks converts a board to engine input, keeping row order.
func TimelineTasks(tasks []Task) []timeline.Task {
	out := make([]timeline.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Timeline()
	}
	return out
}
