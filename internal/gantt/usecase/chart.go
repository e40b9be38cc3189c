package usecase

import (
	"context"
	"fmt"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/pkg/timeline"
)

// Chart lays out the stored board. Results are cached per board version,
// so any mutation makes earlier entries unreachable.
func (uc *implUseCase) Chart(ctx context.Context, input gantt.ChartInput) (gantt.ChartOutput, error) {
	scale := uc.scaleOrDefault(input.Scale)
	today := uc.todayOrDefault(input.Today)
	if !scale.Valid() {
		return gantt.ChartOutput{}, timeline.ErrUnknownScale
	}

	tasks, version, err := uc.repo.Snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Chart: failed to read board: %v", err)
		return gantt.ChartOutput{}, err
	}

	key := fmt.Sprintf("%d|%s|%s", version, scale, today)
	if out, ok := uc.cache.Get(key); ok {
		return out, nil
	}

	out, err := uc.buildChart(tasks, scale, today)
	if err != nil {
		uc.l.Warnf(ctx, "Chart: layout failed at version %d: %v", version, err)
		return gantt.ChartOutput{}, err
	}

	uc.cache.Add(key, out)
	return out, nil
}
