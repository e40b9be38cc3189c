package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/pkg/datemath"
	"gantt-timeline/pkg/log"
	"gantt-timeline/pkg/timeline"
)

// Handler is the public interface for the gantt HTTP delivery layer.
type Handler interface {
	Layout(c *gin.Context)
	Chart(c *gin.Context)
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	DetailTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	ClearTasks(c *gin.Context)
	MoveTask(c *gin.Context)
	ImportICS(c *gin.Context)
	ImportCalendar(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    gantt.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the gantt domain. dates resolves the
// relative date expressions accepted by the chart and import routes; nil
// means UTC.
func New(l log.Logger, uc gantt.UseCase, dates *datemath.Parser) Handler {
	if dates == nil {
		dates = datemath.NewParserIn(time.UTC)
	}
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}

func (h *handler) resolveDate(raw string) (timeline.Date, error) {
	return h.dates.Parse(raw, h.now())
}
