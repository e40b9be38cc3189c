package usecase_test

import (
	"context"
	"errors"
	"testing"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/usecase"
	"gantt-timeline/pkg/timeline"
)

func TestPreview(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Preview(context.Background(), gantt.PreviewInput{
		Tasks: []gantt.CreateTaskInput{
			{Name: "  Design ", Start: d(2024, 6, 1), End: d(2024, 6, 3), Progress: 50},
		},
	})
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}

	if out.Layout.Scale != timeline.ScaleDay {
		t.Errorf("Scale = %v, want default day", out.Layout.Scale)
	}
	if !out.Today.Equal(d(2024, 6, 2)) {
		t.Errorf("Today = %s, want 2024-06-02", out.Today)
	}
	if out.Layout.StartCaption != "2024/05/30" || out.Layout.EndCaption != "2024/06/05" {
		t.Errorf("captions = %s / %s", out.Layout.StartCaption, out.Layout.EndCaption)
	}
	if len(out.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(out.Rows))
	}

	row := out.Rows[0]
	if row.Task.ID != "1" || row.Task.Name != "Design" || row.Task.Color != "#4A90E2" {
		t.Errorf("row task = %+v", row.Task)
	}
	if !approx(row.Bar.Offset, 2.0/6) || !approx(row.Bar.Width, 3.0/6) {
		t.Errorf("bar = %+v", row.Bar)
	}
	if !out.Layout.HasToday || !approx(out.Layout.TodayOffset, 3.0/6) {
		t.Errorf("today offset = %v (%v)", out.Layout.TodayOffset, out.Layout.HasToday)
	}

	if _, total, _ := f.repo.ListTasks(context.Background(), repositoryAll); total != 0 {
		t.Errorf("preview stored %d tasks", total)
	}
}

func TestPreviewValidation(t *testing.T) {
	f := newFixture(t)
	valid := gantt.CreateTaskInput{Name: "a", Start: d(2024, 6, 1), End: d(2024, 6, 3)}

	tests := []struct {
		name    string
		mutate  func(*gantt.CreateTaskInput)
		wantErr error
	}{
		{"empty name", func(in *gantt.CreateTaskInput) { in.Name = "   " }, gantt.ErrEmptyName},
		{"missing start", func(in *gantt.CreateTaskInput) { in.Start = timeline.Date{} }, gantt.ErrMissingDates},
		{"end before start", func(in *gantt.CreateTaskInput) { in.End = d(2024, 5, 1) }, gantt.ErrInvalidDateRange},
		{"progress too high", func(in *gantt.CreateTaskInput) { in.Progress = 101 }, gantt.ErrInvalidProgress},
		{"negative progress", func(in *gantt.CreateTaskInput) { in.Progress = -1 }, gantt.ErrInvalidProgress},
		{"bad color", func(in *gantt.CreateTaskInput) { in.Color = "red" }, gantt.ErrInvalidColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := f.uc.Preview(context.Background(), gantt.PreviewInput{
				Tasks: []gantt.CreateTaskInput{valid, in},
			})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPreviewEmpty(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Preview(context.Background(), gantt.PreviewInput{Scale: timeline.ScaleMonth})
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if !out.Layout.Empty || len(out.Rows) != 0 || len(out.Layout.Labels) != 0 {
		t.Errorf("expected empty chart, got %+v", out.Layout)
	}
}

func TestPreviewUnknownScale(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Preview(context.Background(), gantt.PreviewInput{
		Scale: timeline.Scale(42),
		Tasks: []gantt.CreateTaskInput{{Name: "a", Start: d(2024, 6, 1), End: d(2024, 6, 1)}},
	})
	if !errors.Is(err, timeline.ErrUnknownScale) {
		t.Errorf("error = %v, want ErrUnknownScale", err)
	}
}

func TestPreviewSpanTooLarge(t *testing.T) {
	f := newFixture(t, func(c *usecase.Config) { c.MaxSpanDays = 30 })

	_, err := f.uc.Preview(context.Background(), gantt.PreviewInput{
		Tasks: []gantt.CreateTaskInput{
			{Name: "a", Start: d(2024, 1, 1), End: d(2024, 1, 2)},
			{Name: "b", Start: d(2024, 3, 1), End: d(2024, 3, 2)},
		},
	})
	if !errors.Is(err, gantt.ErrSpanTooLarge) {
		t.Errorf("error = %v, want ErrSpanTooLarge", err)
	}
}
