package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/internal/gantt/repository/memory"
	"gantt-timeline/internal/gantt/usecase"
	"gantt-timeline/pkg/gcalendar"
	"gantt-timeline/pkg/timeline"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	events []gcalendar.Event
	err    error
	got    gcalendar.ListEventsRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.got = req
	return m.events, m.err
}

// fixedNow is 2024-06-02 10:00 UTC.
var fixedNow = time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

func d(y int, m time.Month, day int) timeline.Date {
	return timeline.NewDate(y, m, day)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type fixture struct {
	uc       gantt.UseCase
	repo     repository.Repository
	calendar *mockCalendar
}

func newFixture(t *testing.T, mutate ...func(*usecase.Config)) fixture {
	t.Helper()
	cfg := usecase.Config{
		Location:       time.UTC,
		DefaultScale:   timeline.ScaleDay,
		DayPadding:     timeline.DefaultDayPadding,
		DefaultColor:   "#4A90E2",
		MaxSpanDays:    3660,
		CacheSize:      8,
		MaxOccurrences: 50,
		Now:            func() time.Time { return fixedNow },
	}
	for _, fn := range mutate {
		fn(&cfg)
	}

	repo := memory.New(&mockLogger{}, 5)
	cal := &mockCalendar{}
	uc, err := usecase.New(&mockLogger{}, repo, cal, cfg)
	if err != nil {
		t.Fatalf("usecase.New() error: %v", err)
	}
	return fixture{uc: uc, repo: repo, calendar: cal}
}
