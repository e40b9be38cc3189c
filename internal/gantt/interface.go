package gantt

import (
	"context"

	"gantt-timeline/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Layout
	Preview(ctx context.Context, input PreviewInput) (ChartOutput, error)
	Chart(ctx context.Context, input ChartInput) (ChartOutput, error)

	// Task board
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	DetailTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ClearTasks(ctx context.Context) (ClearTasksOutput, error)
	MoveTask(ctx context.Context, input MoveTaskInput) error

	// Import
	ImportICS(ctx context.Context, input ImportICSInput) (ImportOutput, error)
	ImportCalendar(ctx context.Context, input ImportCalendarInput) (ImportOutput, error)
}
