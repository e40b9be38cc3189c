package usecase_test

import (
	"context"
	"testing"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/pkg/timeline"
)

var repositoryAll = repository.ListTasksOptions{}

func TestChartFollowsBoard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty, err := f.uc.Chart(ctx, gantt.ChartInput{})
	if err != nil {
		t.Fatalf("Chart() error: %v", err)
	}
	if !empty.Layout.Empty {
		t.Error("expected empty chart for empty board")
	}

	first, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "a", Start: d(2024, 6, 1), End: d(2024, 6, 3)})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	one, err := f.uc.Chart(ctx, gantt.ChartInput{})
	if err != nil {
		t.Fatalf("Chart() error: %v", err)
	}
	if len(one.Rows) != 1 || one.Rows[0].Task.ID != first.ID {
		t.Fatalf("rows = %+v", one.Rows)
	}

	second, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "b", Start: d(2024, 6, 4), End: d(2024, 6, 8)})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if err := f.uc.MoveTask(ctx, gantt.MoveTaskInput{ID: second.ID, Position: 0}); err != nil {
		t.Fatalf("MoveTask() error: %v", err)
	}

	two, err := f.uc.Chart(ctx, gantt.ChartInput{})
	if err != nil {
		t.Fatalf("Chart() error: %v", err)
	}
	if len(two.Rows) != 2 || two.Rows[0].Task.ID != second.ID || two.Rows[1].Task.ID != first.ID {
		t.Fatalf("stale or misordered rows: %+v", two.Rows)
	}
	for _, row := range two.Rows {
		if row.Bar.Offset+row.Bar.Width > 1+1e-9 {
			t.Errorf("bar %+v leaves the range", row.Bar)
		}
	}
}

func TestChartScalesAndToday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	if _, err := f.uc.CreateTask(ctx, gantt.CreateTaskInput{Name: "a", Start: d(2024, 6, 15), End: d(2024, 7, 10)}); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	tests := []struct {
		name       string
		input      gantt.ChartInput
		wantLabels int
		wantToday  bool
	}{
		{"month", gantt.ChartInput{Scale: timeline.ScaleMonth, Today: d(2024, 7, 1)}, 2, true},
		{"week", gantt.ChartInput{Scale: timeline.ScaleWeek, Today: d(2024, 8, 1)}, 5, false},
		{"day default today", gantt.ChartInput{Scale: timeline.ScaleDay}, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := f.uc.Chart(ctx, tc.input)
			if err != nil {
				t.Fatalf("Chart() error: %v", err)
			}
			if len(out.Layout.Labels) != tc.wantLabels {
				t.Errorf("labels = %d (%v), want %d", len(out.Layout.Labels), out.Layout.Labels, tc.wantLabels)
			}
			if out.Layout.HasToday != tc.wantToday {
				t.Errorf("HasToday = %v, want %v", out.Layout.HasToday, tc.wantToday)
			}
		})
	}
}
