package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/gcalendar"
	"gantt-timeline/pkg/ics"
	"gantt-timeline/pkg/timeline"
)

const untitledEvent = "(untitled event)"

// ImportICS expands the VEVENTs of an iCalendar payload inside the import
// window and appends one task per occurrence. The import is all or nothing.
func (uc *implUseCase) ImportICS(ctx context.Context, input gantt.ImportICSInput) (gantt.ImportOutput, error) {
	if len(strings.TrimSpace(string(input.Body))) == 0 {
		return gantt.ImportOutput{}, gantt.ErrEmptyICS
	}
	from, to, err := uc.importWindow(input.From, input.To)
	if err != nil {
		return gantt.ImportOutput{}, err
	}

	events, err := ics.Parse(input.Body)
	if err != nil {
		uc.l.Warnf(ctx, "ImportICS: parse failed: %v", err)
		return gantt.ImportOutput{}, fmt.Errorf("%w: %v", gantt.ErrInvalidICS, err)
	}

	res, err := ics.Expand(events, ics.ExpandConfig{
		From:           from.In(uc.cfg.Location),
		To:             to.AddDays(1).In(uc.cfg.Location).Add(-time.Nanosecond),
		MaxOccurrences: uc.cfg.MaxOccurrences,
	})
	if err != nil {
		return gantt.ImportOutput{}, fmt.Errorf("%w: %v", gantt.ErrInvalidImportWindow, err)
	}
	if len(res.Truncated) > 0 {
		uc.l.Warnf(ctx, "ImportICS: recurrence truncated for %d events: %v", len(res.Truncated), res.Truncated)
	}

	opts := make([]repository.CreateTaskOptions, 0, len(res.Occurrences))
	for _, o := range res.Occurrences {
		start, end := o.Dates(uc.cfg.Location)
		opts = append(opts, uc.importOption(o.Summary, start, end, model.SourceICS, o.UID))
	}

	return uc.importTasks(ctx, "ImportICS", opts)
}

// ImportCalendar appends one task per Google Calendar event in the window.
func (uc *implUseCase) ImportCalendar(ctx context.Context, input gantt.ImportCalendarInput) (gantt.ImportOutput, error) {
	if uc.calendar == nil {
		return gantt.ImportOutput{}, gantt.ErrCalendarUnavailable
	}
	from, to, err := uc.importWindow(input.From, input.To)
	if err != nil {
		return gantt.ImportOutput{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    from.In(uc.cfg.Location),
		TimeMax:    to.AddDays(1).In(uc.cfg.Location),
		MaxResults: int64(uc.cfg.MaxOccurrences),
	})
	if err != nil {
		uc.l.Errorf(ctx, "ImportCalendar: failed to list events of %s: %v", calendarID, err)
		return gantt.ImportOutput{}, fmt.Errorf("%w: %v", gantt.ErrCalendarUnavailable, err)
	}

	opts := make([]repository.CreateTaskOptions, 0, len(events))
	for _, ev := range events {
		start, end := ics.Occurrence{
			Start:  ev.StartTime,
			End:    ev.EndTime,
			AllDay: ev.AllDay,
		}.Dates(uc.cfg.Location)
		opts = append(opts, uc.importOption(ev.Summary, start, end, model.SourceGoogleCalendar, ev.ID))
	}

	return uc.importTasks(ctx, "ImportCalendar", opts)
}

// importWindow defaults a missing bound to today and checks ordering and,
// when MaxSpanDays is set, length.
func (uc *implUseCase) importWindow(from, to timeline.Date) (timeline.Date, timeline.Date, error) {
	today := uc.todayOrDefault(timeline.Date{})
	if from.IsZero() {
		from = today
	}
	if to.IsZero() {
		to = from.AddMonths(1)
	}
	if to.Before(from) {
		return from, to, gantt.ErrInvalidImportWindow
	}
	if uc.cfg.MaxSpanDays > 0 && from.DaysUntil(to) > uc.cfg.MaxSpanDays {
		return from, to, gantt.ErrSpanTooLarge
	}
	return from, to, nil
}

func (uc *implUseCase) importOption(summary string, start, end timeline.Date, source model.TaskSource, ref string) repository.CreateTaskOptions {
	name := strings.TrimSpace(summary)
	if name == "" {
		name = untitledEvent
	}
	return repository.CreateTaskOptions{
		Name:      name,
		Start:     start,
		End:       end,
		Color:     uc.cfg.DefaultColor,
		Source:    source,
		SourceRef: ref,
	}
}

func (uc *implUseCase) importTasks(ctx context.Context, op string, opts []repository.CreateTaskOptions) (gantt.ImportOutput, error) {
	if len(opts) == 0 {
		return gantt.ImportOutput{Tasks: []model.Task{}}, nil
	}

	created, err := uc.repo.CreateTasksBatch(ctx, opts)
	if err != nil {
		if !errors.Is(err, repository.ErrCapacityExceeded) {
			uc.l.Errorf(ctx, "%s: failed to store %d tasks: %v", op, len(opts), err)
		}
		return gantt.ImportOutput{}, mapRepoError(err)
	}

	uc.l.Infof(ctx, "%s: imported %d tasks", op, len(created))
	return gantt.ImportOutput{Tasks: created, Count: len(created)}, nil
}
