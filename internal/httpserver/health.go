package httpserver

import (
	"github.com/gin-gonic/gin"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Gantt timeline service"
	HealthVersion = "1.0.0"
	ServiceName   = "gantt-timeline"
)

func (srv HTTPServer) probe(c *gin.Context, status string, extra gin.H) {
	body := gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
	for k, v := range extra {
		body[k] = v
	}
	response.OK(c, body)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy", nil)
}

// readyCheck reports ready once the task board answers, with its row count.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 500 {object} response.Resp "Board unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := srv.ganttUC.ListTasks(ctx, gantt.ListTasksInput{Limit: 1})
	if err != nil {
		srv.l.Errorf(ctx, "readyCheck: %v", err)
		response.InternalError(c, err)
		return
	}
	srv.probe(c, "ready", gin.H{"tasks": out.Total})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive", nil)
}
