package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxICSBytes bounds the iCalendar payload accepted by the import route.
const maxICSBytes = 2 << 20

func (h *handler) processLayoutReq(c *gin.Context) (layoutReq, error) {
	var req layoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.resolveDate)
}

func (h *handler) processChartReq(c *gin.Context) (chartReq, error) {
	var req chartReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.resolveDate)
}

func (h *handler) processCreateTaskReq(c *gin.Context) (taskReq, error) {
	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body plus the URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processMoveReq(c *gin.Context) (moveReq, error) {
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processImportICSReq reads the raw text/calendar body and the window query.
func (h *handler) processImportICSReq(c *gin.Context) (importICSReq, error) {
	var req importICSReq
	if err := c.ShouldBindQuery(&req.importWindowReq); err != nil {
		return req, err
	}
	if err := req.validate(h.resolveDate); err != nil {
		return req, err
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxICSBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errICSTooLarge
		}
		return req, err
	}
	req.Body = body
	return req, nil
}

func (h *handler) processImportCalendarReq(c *gin.Context) (importCalendarReq, error) {
	var req importCalendarReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate(h.resolveDate)
}
