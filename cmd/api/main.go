package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gantt-timeline/config"
	_ "gantt-timeline/docs" // Swagger docs
	"gantt-timeline/internal/gantt/repository/memory"
	"gantt-timeline/internal/gantt/usecase"
	"gantt-timeline/internal/httpserver"
	"gantt-timeline/internal/middleware"
	"gantt-timeline/pkg/datemath"
	"gantt-timeline/pkg/gcalendar"
	"gantt-timeline/pkg/log"
	"gantt-timeline/pkg/timeline"
)

// @title       Gantt Timeline API
// @description Lays out Gantt charts over day, week and month scales and manages an ordered task board.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gantt Timeline service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timeline settings
	loc, err := time.LoadLocation(cfg.Timeline.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timeline.Timezone, err)
		loc = time.UTC
	}
	defaultScale, err := timeline.ParseScale(cfg.Timeline.DefaultScale)
	if err != nil {
		logger.Error(ctx, "Invalid default scale: ", err)
		return
	}

	// 4. Google Calendar client (optional)
	var calendarSource usecase.CalendarSource
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarSource = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Info(ctx, "Google Calendar import disabled: google_calendar.credentials_path is empty")
	}

	// 5. Gantt domain
	repo := memory.New(logger, cfg.Gantt.MaxTasks)
	ganttUC, err := usecase.New(logger, repo, calendarSource, usecase.Config{
		Location:       loc,
		DefaultScale:   defaultScale,
		DayPadding:     cfg.Timeline.DayPadding,
		DefaultColor:   cfg.Gantt.DefaultColor,
		MaxSpanDays:    cfg.Gantt.MaxSpanDays,
		CacheSize:      cfg.Gantt.LayoutCacheSize,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		MaxOccurrences: cfg.ICS.MaxOccurrences,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gantt use case: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		GanttUseCase: ganttUC,
		DateParser:   datemath.NewParserIn(loc),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
