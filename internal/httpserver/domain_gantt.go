package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ganttHTTP "gantt-timeline/internal/gantt/delivery/http"
)

// setupGanttDomain registers /api/v1/gantt/*. The use case is built in main
// so the server stays free of storage and calendar wiring.
func (srv HTTPServer) setupGanttDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := ganttHTTP.New(srv.l, srv.ganttUC, srv.dates)
	ganttHTTP.RegisterRoutes(api.Group("/gantt"), h)

	srv.l.Infof(ctx, "Gantt domain registered")
	return nil
}
