package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/middleware"
	"gantt-timeline/pkg/datemath"
	"gantt-timeline/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Gantt domain
	ganttUC gantt.UseCase
	dates   *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.Config

	// Gantt domain
	GanttUseCase gantt.UseCase
	DateParser   *datemath.Parser
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RateLimit),
		ganttUC:     cfg.GanttUseCase,
		dates:       cfg.DateParser,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.ganttUC == nil {
		return errors.New("gantt use case is required")
	}
	return nil
}
