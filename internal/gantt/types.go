package gantt

import (
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/timeline"
)

// --- Task board inputs ---

// CreateTaskInput is the input for adding a task to the board.
type CreateTaskInput struct {
	Name     string
	Start    timeline.Date
	End      timeline.Date
	Progress int
	Color    string // Optional; the configured default color is used when empty
}

// UpdateTaskInput is a partial update. Nil fields keep their current value.
type UpdateTaskInput struct {
	ID       string
	Name     *string
	Start    *timeline.Date
	End      *timeline.Date
	Progress *int
	Color    *string
}

type ListTasksInput struct {
	Limit  int
	Offset int
}

// MoveTaskInput moves a task to a new row index (0-based).
type MoveTaskInput struct {
	ID       string
	Position int
}

// --- Layout inputs ---

// PreviewInput lays out caller-supplied tasks without touching the board.
// A zero Scale selects the configured default; a zero Today means the
// current date in the configured timezone.
type PreviewInput struct {
	Tasks []CreateTaskInput
	Scale timeline.Scale
	Today timeline.Date
}

// ChartInput lays out the stored board.
type ChartInput struct {
	Scale timeline.Scale
	Today timeline.Date
}

// --- Import inputs ---

// ImportICSInput creates tasks from the VEVENTs of an iCalendar payload.
// Recurring events are expanded inside [From, To].
type ImportICSInput struct {
	Body []byte
	From timeline.Date
	To   timeline.Date
}

// ImportCalendarInput creates tasks from Google Calendar events in [From, To].
type ImportCalendarInput struct {
	CalendarID string
	From       timeline.Date
	To         timeline.Date
}

// --- Outputs ---

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// ChartRow pairs a board task with its bar.
type ChartRow struct {
	Task model.Task
	Bar  timeline.Bar
}

// ChartOutput is a laid-out chart ready for rendering.
type ChartOutput struct {
	Layout timeline.Result
	Rows   []ChartRow
	Today  timeline.Date
}

type ImportOutput struct {
	Tasks []model.Task
	Count int
}

type ClearTasksOutput struct {
	Removed int
}
