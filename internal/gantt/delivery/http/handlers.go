package http

import (
	"github.com/gin-gonic/gin"

	"gantt-timeline/pkg/response"
)

// Layout godoc
// @Summary     Preview a chart layout
// @Description Lays out the supplied tasks without storing them. Scale defaults to the configured scale and today to the current date.
// @Tags        Gantt
// @Accept      json
// @Produce     json
// @Param       body body layoutReq true "Tasks, scale (day/week/month) and optional today"
// @Success     200  {object} chartResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/layout [POST]
func (h *handler) Layout(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLayoutReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChartResp(output))
}

// Chart godoc
// @Summary     Lay out the task board
// @Description Returns the axis labels, per-row bars and today marker for the stored tasks in row order.
// @Tags        Gantt
// @Produce     json
// @Param       scale query string false "day, week or month"
// @Param       today query string false "Override today (YYYY-MM-DD or relative, e.g. tomorrow)"
// @Success     200 {object} chartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/chart [GET]
func (h *handler) Chart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChartReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chart(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chart: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChartResp(output))
}

// CreateTask godoc
// @Summary     Add a task
// @Description Appends a task as the last row of the board. Color defaults to the configured color.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body taskReq true "Task data"
// @Success     200  {object} taskItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - board is full"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns the board rows in order.
// @Tags        Tasks
// @Produce     json
// @Param       limit  query int false "Page size (default: 100, max: 500)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// DetailTask godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks/{id} [GET]
func (h *handler) DetailTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.DetailTask(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.DetailTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Partial update; omitted fields keep their value. The resulting task is validated as a whole.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks/{id} [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskItemResp(output))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.DeleteTask(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ClearTasks godoc
// @Summary     Clear the board
// @Description Removes every task.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/gantt/tasks [DELETE]
func (h *handler) ClearTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, clearResp{Removed: output.Removed})
}

// MoveTask godoc
// @Summary     Reorder a task
// @Description Moves the task to a 0-based row index.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body moveReq true "Target position"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/gantt/tasks/{id}/move [POST]
func (h *handler) MoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MoveTask(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.MoveTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ImportICS godoc
// @Summary     Import an iCalendar file
// @Description Creates one task per event occurrence inside the window. Recurring events are expanded.
// @Tags        Import
// @Accept      text/calendar
// @Produce     json
// @Param       from query string false "Window start (YYYY-MM-DD or relative, default today)"
// @Param       to   query string false "Window end (YYYY-MM-DD or relative, default one month after from)"
// @Param       body body string true   "iCalendar payload"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - board is full"
// @Failure     413 {object} response.Resp "Payload Too Large"
// @Router      /api/v1/gantt/import/ics [POST]
func (h *handler) ImportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportICSReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportICS(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ImportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// ImportCalendar godoc
// @Summary     Import Google Calendar events
// @Description Creates one task per event of the calendar inside the window.
// @Tags        Import
// @Accept      json
// @Produce     json
// @Param       body body importCalendarReq false "Calendar ID and window"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - board is full"
// @Failure     503 {object} response.Resp "Google Calendar not configured or unreachable"
// @Router      /api/v1/gantt/import/calendar [POST]
func (h *handler) ImportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ImportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
