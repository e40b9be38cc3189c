package usecase

import (
	"errors"
	"regexp"
	"strings"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/timeline"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func validColor(c string) bool {
	return colorPattern.MatchString(c)
}

// taskFields is the editable part of a task after defaults are applied.
type taskFields struct {
	Name     string
	Start    timeline.Date
	End      timeline.Date
	Progress int
	Color    string
}

// normalize trims the name, fills in the default color and validates.
func (uc *implUseCase) normalize(f taskFields) (taskFields, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Color = strings.TrimSpace(f.Color)
	if f.Color == "" {
		f.Color = uc.cfg.DefaultColor
	}

	switch {
	case f.Name == "":
		return f, gantt.ErrEmptyName
	case f.Start.IsZero() || f.End.IsZero():
		return f, gantt.ErrMissingDates
	case f.End.Before(f.Start):
		return f, gantt.ErrInvalidDateRange
	case f.Progress < 0 || f.Progress > 100:
		return f, gantt.ErrInvalidProgress
	case !validColor(f.Color):
		return f, gantt.ErrInvalidColor
	}
	return f, nil
}

func (uc *implUseCase) scaleOrDefault(s timeline.Scale) timeline.Scale {
	if s == 0 {
		return uc.cfg.DefaultScale
	}
	return s
}

func (uc *implUseCase) todayOrDefault(d timeline.Date) timeline.Date {
	if d.IsZero() {
		return timeline.DateOf(uc.cfg.Now().In(uc.cfg.Location))
	}
	return d
}

// checkSpan rejects task sets whose dates are too far apart to lay out.
func (uc *implUseCase) checkSpan(tasks []timeline.Task) error {
	if uc.cfg.MaxSpanDays <= 0 || len(tasks) == 0 {
		return nil
	}
	lo, hi := tasks[0].Start, tasks[0].End
	for _, t := range tasks {
		lo = timeline.MinDate(lo, timeline.MinDate(t.Start, t.End))
		hi = timeline.MaxDate(hi, timeline.MaxDate(t.Start, t.End))
	}
	if lo.DaysUntil(hi) > uc.cfg.MaxSpanDays {
		return gantt.ErrSpanTooLarge
	}
	return nil
}

// buildChart lays out tasks in row order and pairs each with its bar.
func (uc *implUseCase) buildChart(tasks []model.Task, scale timeline.Scale, today timeline.Date) (gantt.ChartOutput, error) {
	input := model.TimelineTasks(tasks)
	if err := uc.checkSpan(input); err != nil {
		return gantt.ChartOutput{}, err
	}

	res, err := uc.opts.Layout(input, scale, today)
	if err != nil {
		return gantt.ChartOutput{}, err
	}

	rows := make([]gantt.ChartRow, len(tasks))
	for i, t := range tasks {
		rows[i] = gantt.ChartRow{Task: t, Bar: res.Bars[i]}
	}
	return gantt.ChartOutput{Layout: res, Rows: rows, Today: today}, nil
}

// mapRepoError translates repository sentinels into domain errors.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return gantt.ErrTaskNotFound
	case errors.Is(err, repository.ErrCapacityExceeded):
		return gantt.ErrBoardFull
	case errors.Is(err, repository.ErrInvalidPosition):
		return gantt.ErrInvalidPosition
	default:
		return err
	}
}
