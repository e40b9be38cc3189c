package usecase

import (
	"context"
	"errors"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/model"
)

// CreateTask validates the input and appends it as the last row.
func (uc *implUseCase) CreateTask(ctx context.Context, input gantt.CreateTaskInput) (model.Task, error) {
	f, err := uc.normalize(taskFields{
		Name:     input.Name,
		Start:    input.Start,
		End:      input.End,
		Progress: input.Progress,
		Color:    input.Color,
	})
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Name:     f.Name,
		Start:    f.Start,
		End:      f.End,
		Progress: f.Progress,
		Color:    f.Color,
		Source:   model.SourceManual,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreateTask: failed to create task %q: %v", f.Name, err)
		return model.Task{}, mapRepoError(err)
	}

	uc.l.Infof(ctx, "CreateTask: created task %q id=%s", t.Name, t.ID)
	return t, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context, input gantt.ListTasksInput) (gantt.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ListTasks: %v", err)
		return gantt.ListTasksOutput{}, err
	}

	return gantt.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func (uc *implUseCase) DetailTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "DetailTask: failed to get task %s: %v", id, err)
		}
		return model.Task{}, mapRepoError(err)
	}
	return t, nil
}

// UpdateTask applies the non-nil fields of input and revalidates the
// resulting task as a whole.
func (uc *implUseCase) UpdateTask(ctx context.Context, input gantt.UpdateTaskInput) (model.Task, error) {
	current, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}

	f := taskFields{
		Name:     current.Name,
		Start:    current.Start,
		End:      current.End,
		Progress: current.Progress,
		Color:    current.Color,
	}
	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.Start != nil {
		f.Start = *input.Start
	}
	if input.End != nil {
		f.End = *input.End
	}
	if input.Progress != nil {
		f.Progress = *input.Progress
	}
	if input.Color != nil {
		f.Color = *input.Color
	}

	f, err = uc.normalize(f)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:       input.ID,
		Name:     f.Name,
		Start:    f.Start,
		End:      f.End,
		Progress: f.Progress,
		Color:    f.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "UpdateTask: failed to update task %s: %v", input.ID, err)
		return model.Task{}, mapRepoError(err)
	}
	return t, nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return mapRepoError(err)
	}
	uc.l.Infof(ctx, "DeleteTask: deleted task %s", id)
	return nil
}

// ClearTasks empties the board.
func (uc *implUseCase) ClearTasks(ctx context.Context) (gantt.ClearTasksOutput, error) {
	n, err := uc.repo.ClearTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "ClearTasks: %v", err)
		return gantt.ClearTasksOutput{}, err
	}
	return gantt.ClearTasksOutput{Removed: n}, nil
}

// MoveTask changes a task's row index. Row order is the order bars are drawn.
func (uc *implUseCase) MoveTask(ctx context.Context, input gantt.MoveTaskInput) error {
	err := uc.repo.MoveTask(ctx, repository.MoveTaskOptions{
		ID:       input.ID,
		Position: input.Position,
	})
	if err != nil {
		return mapRepoError(err)
	}
	return nil
}
