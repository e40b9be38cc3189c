package usecase_test

import (
	"context"
	"errors"
	"testing"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/model"
)

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{
		Name: " Build ", Start: d(2024, 6, 1), End: d(2024, 6, 5), Progress: 10,
	})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if created.Name != "Build" || created.Color != "#4A90E2" || created.Source != model.SourceManual {
		t.Errorf("created = %+v", created)
	}

	if _, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "x", Start: d(2024, 6, 5), End: d(2024, 6, 1)}); !errors.Is(err, gantt.ErrInvalidDateRange) {
		t.Errorf("error = %v, want ErrInvalidDateRange", err)
	}
}

func TestCreateTaskBoardFull(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t) // board capacity is 5

	in := gantt.CreateTaskInput{Name: "t", Start: d(2024, 6, 1), End: d(2024, 6, 1)}
	for i := 0; i < 5; i++ {
		if _, err := f.uc.CreateTask(ctx, in); err != nil {
			t.Fatalf("CreateTask(%d) error: %v", i, err)
		}
	}
	if _, err := f.uc.CreateTask(ctx, in); !errors.Is(err, gantt.ErrBoardFull) {
		t.Errorf("error = %v, want ErrBoardFull", err)
	}
}

func TestListAndDetailTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		task, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: name, Start: d(2024, 6, 1), End: d(2024, 6, 2)})
		if err != nil {
			t.Fatalf("CreateTask() error: %v", err)
		}
		ids = append(ids, task.ID)
	}

	out, err := f.uc.ListTasks(ctx, gantt.ListTasksInput{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListTasks() error: %v", err)
	}
	if out.Total != 3 || len(out.Tasks) != 2 || out.Tasks[0].Name != "b" || out.Limit != 2 || out.Offset != 1 {
		t.Errorf("ListTasks() = %+v", out)
	}

	got, err := f.uc.DetailTask(ctx, ids[2])
	if err != nil || got.Name != "c" {
		t.Errorf("DetailTask() = %+v, %v", got, err)
	}
	if _, err := f.uc.DetailTask(ctx, "missing"); !errors.Is(err, gantt.ErrTaskNotFound) {
		t.Errorf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	orig, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "a", Start: d(2024, 6, 1), End: d(2024, 6, 3), Progress: 5})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	progress := 80
	end := d(2024, 6, 10)
	updated, err := f.uc.UpdateTask(ctx, gantt.UpdateTaskInput{ID: orig.ID, Progress: &progress, End: &end})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.Name != "a" || updated.Progress != 80 || !updated.End.Equal(end) || !updated.Start.Equal(orig.Start) {
		t.Errorf("updated = %+v", updated)
	}

	t.Run("invalid result is rejected", func(t *testing.T) {
		start := d(2024, 7, 1)
		if _, err := f.uc.UpdateTask(ctx, gantt.UpdateTaskInput{ID: orig.ID, Start: &start}); !errors.Is(err, gantt.ErrInvalidDateRange) {
			t.Fatalf("error = %v, want ErrInvalidDateRange", err)
		}
		got, _ := f.uc.DetailTask(ctx, orig.ID)
		if !got.Start.Equal(orig.Start) {
			t.Errorf("task changed on failed update: %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		if _, err := f.uc.UpdateTask(ctx, gantt.UpdateTaskInput{ID: "missing", Name: &name}); !errors.Is(err, gantt.ErrTaskNotFound) {
			t.Errorf("error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestDeleteClearMove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, _ := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "a", Start: d(2024, 6, 1), End: d(2024, 6, 2)})
	f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "b", Start: d(2024, 6, 1), End: d(2024, 6, 2)})

	if err := f.uc.MoveTask(ctx, gantt.MoveTaskInput{ID: a.ID, Position: 5}); !errors.Is(err, gantt.ErrInvalidPosition) {
		t.Errorf("MoveTask() error = %v, want ErrInvalidPosition", err)
	}
	if err := f.uc.MoveTask(ctx, gantt.MoveTaskInput{ID: "missing"}); !errors.Is(err, gantt.ErrTaskNotFound) {
		t.Errorf("MoveTask() error = %v, want ErrTaskNotFound", err)
	}

	if err := f.uc.DeleteTask(ctx, a.ID); err != nil {
		t.Fatalf("DeleteTask() error: %v", err)
	}
	if err := f.uc.DeleteTask(ctx, a.ID); !errors.Is(err, gantt.ErrTaskNotFound) {
		t.Errorf("DeleteTask() error = %v, want ErrTaskNotFound", err)
	}

	out, err := f.uc.ClearTasks(ctx)
	if err != nil {
		t.Fatalf("ClearTasks() error: %v", err)
	}
	if out.Removed != 1 {
		t.Errorf("Removed = %d, want 1", out.Removed)
	}
}
