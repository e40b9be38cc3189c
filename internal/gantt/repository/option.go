package repository

import (
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/timeline"
)

// CreateTaskOptions holds the parameters for appending a task to the board.
type CreateTaskOptions struct {
	Name      string
	Start     timeline.Date
	End       timeline.Date
	Progress  int
	Color     string
	Source    model.TaskSource
	SourceRef string
}

// ListTasksOptions holds pagination parameters. A zero Limit means no limit.
type ListTasksOptions struct {
	Limit  int
	Offset int
}

// UpdateTaskOptions replaces every editable field of an existing task.
type UpdateTaskOptions struct {
	ID       string
	Name     string
	Start    timeline.Date
	End      timeline.Date
	Progress int
	Color    string
}

// MoveTaskOptions moves a task to Position (0-based) in the row order.
type MoveTaskOptions struct {
	ID       string
	Position int
}
