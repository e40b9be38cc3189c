package usecase

import (
	"context"
	"fmt"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/model"
)

// Preview lays out caller-supplied tasks without storing them.
// Rows get positional IDs ("1", "2", ...) so bars can be matched to input.
func (uc *implUseCase) Preview(ctx context.Context, input gantt.PreviewInput) (gantt.ChartOutput, error) {
	scale := uc.scaleOrDefault(input.Scale)
	today := uc.todayOrDefault(input.Today)

	tasks := make([]model.Task, 0, len(input.Tasks))
	for i, in := range input.Tasks {
		f, err := uc.normalize(taskFields{
			Name:     in.Name,
			Start:    in.Start,
			End:      in.End,
			Progress: in.Progress,
			Color:    in.Color,
		})
		if err != nil {
			return gantt.ChartOutput{}, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, model.Task{
			ID:       fmt.Sprint(i + 1),
			Name:     f.Name,
			Start:    f.Start,
			End:      f.End,
			Progress: f.Progress,
			Color:    f.Color,
			Source:   model.SourceManual,
		})
	}

	out, err := uc.buildChart(tasks, scale, today)
	if err != nil {
		uc.l.Warnf(ctx, "Preview: layout failed for %d tasks: %v", len(tasks), err)
		return gantt.ChartOutput{}, err
	}
	return out, nil
}
