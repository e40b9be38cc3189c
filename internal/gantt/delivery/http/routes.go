package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/layout", h.Layout)
	rg.GET("/chart", h.Chart)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.DELETE("", h.ClearTasks)
		tasks.GET("/:id", h.DetailTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.POST("/:id/move", h.MoveTask)
	}

	imports := rg.Group("/import")
	{
		imports.POST("/ics", h.ImportICS)
		imports.POST("/calendar", h.ImportCalendar)
	}
}
