package repository

import (
	"context"

	"gantt-timeline/internal/model"
)

// Repository is the composed interface for the gantt domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines data access for the ordered task board. Row order
// is significant and is preserved by every method.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	CreateTasksBatch(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ClearTasks(ctx context.Context) (int, error)
	MoveTask(ctx context.Context, opt MoveTaskOptions) error

	// Snapshot returns every task in row order together with the board
	// version they were read at. The version changes on every mutation.
	Snapshot(ctx context.Context) ([]model.Task, uint64, error)
}
