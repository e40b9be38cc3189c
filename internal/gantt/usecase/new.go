package usecase

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository"
	"gantt-timeline/pkg/gcalendar"
	pkgLog "gantt-timeline/pkg/log"
	"gantt-timeline/pkg/timeline"
)

// CalendarSource lists events from an external calendar.
// *gcalendar.Client satisfies it.
type CalendarSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config tunes layout and import behaviour.
type Config struct {
	Location       *time.Location // decides what "today" is; nil means UTC
	DefaultScale   timeline.Scale
	DayPadding     int
	DefaultColor   string
	MaxSpanDays    int // zero disables the check
	CacheSize      int
	CalendarID     string
	MaxOccurrences int

	Now func() time.Time // nil means time.Now
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar CalendarSource // nil when Google Calendar is not configured
	cfg      Config
	opts     timeline.Options
	cache    *lru.Cache[string, gantt.ChartOutput]
}

// New creates a new gantt UseCase instance. calendar may be nil.
func New(l pkgLog.Logger, repo repository.Repository, calendar CalendarSource, cfg Config) (gantt.UseCase, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if !cfg.DefaultScale.Valid() {
		cfg.DefaultScale = timeline.ScaleDay
	}
	if cfg.DayPadding < 0 {
		return nil, fmt.Errorf("day padding must not be negative: %d", cfg.DayPadding)
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = defaultColor
	}
	if !validColor(cfg.DefaultColor) {
		return nil, fmt.Errorf("%w: default color %q", gantt.ErrInvalidColor, cfg.DefaultColor)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	cache, err := lru.New[string, gantt.ChartOutput](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create layout cache: %w", err)
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		cfg:      cfg,
		opts:     timeline.Options{DayPadding: cfg.DayPadding},
		cache:    cache,
	}, nil
}
