package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/model"
)

func (r *implRepository) newTask(opt repository.CreateTaskOptions) model.Task {
	now := r.now()
	source := opt.Source
	if source == "" {
		source = model.SourceManual
	}
	return model.Task{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		Start:     opt.Start,
		End:       opt.End,
		Progress:  opt.Progress,
		Color:     opt.Color,
		Source:    source,
		SourceRef: opt.SourceRef,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTask appends a task as the last row.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.tasks) >= r.maxTasks {
		return model.Task{}, repository.ErrCapacityExceeded
	}

	t := r.newTask(opt)
	r.tasks = append(r.tasks, t)
	r.version++
	return t, nil
}

// CreateTasksBatch appends all tasks or none of them.
func (r *implRepository) CreateTasksBatch(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.tasks)+len(opts) > r.maxTasks {
		return nil, fmt.Errorf("%w: %d rows requested, %d free",
			repository.ErrCapacityExceeded, len(opts), r.maxTasks-len(r.tasks))
	}

	created := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		created = append(created, r.newTask(opt))
	}
	r.tasks = append(r.tasks, created...)
	if len(created) > 0 {
		r.version++
	}
	return created, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return r.tasks[i], nil
}

// ListTasks returns a page of rows plus the total row count.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.tasks)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	page := make([]model.Task, end-start)
	copy(page, r.tasks[start:end])
	return page, total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}

	t := r.tasks[i]
	t.Name = opt.Name
	t.Start = opt.Start
	t.End = opt.End
	t.Progress = opt.Progress
	t.Color = opt.Color
	t.UpdatedAt = r.now()
	r.tasks[i] = t
	r.version++
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	r.version++
	return nil
}

// ClearTasks removes every row and reports how many were removed.
func (r *implRepository) ClearTasks(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.tasks)
	r.tasks = nil
	r.version++
	r.l.Infof(ctx, "gantt/repository/memory.ClearTasks: removed %d tasks", n)
	return n, nil
}

// MoveTask removes the task from its row and reinserts it at Position.
func (r *implRepository) MoveTask(ctx context.Context, opt repository.MoveTaskOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	from := r.indexOf(opt.ID)
	if from < 0 {
		return repository.ErrNotFound
	}
	if opt.Position < 0 || opt.Position >= len(r.tasks) {
		return repository.ErrInvalidPosition
	}
	if from == opt.Position {
		return nil
	}

	t := r.tasks[from]
	rest := append(r.tasks[:from:from], r.tasks[from+1:]...)
	reordered := make([]model.Task, 0, len(r.tasks))
	reordered = append(reordered, rest[:opt.Position]...)
	reordered = append(reordered, t)
	reordered = append(reordered, rest[opt.Position:]...)
	r.tasks = reordered
	r.version++
	return nil
}

func (r *implRepository) Snapshot(ctx context.Context) ([]model.Task, uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, r.version, nil
}
