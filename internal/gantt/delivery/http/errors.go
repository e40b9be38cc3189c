package http

import (
	"errors"
	"net/http"

	"gantt-timeline/internal/gantt"
	pkgErrors "gantt-timeline/pkg/errors"
	"gantt-timeline/pkg/timeline"
)

var (
	errIDRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errICSTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "ics payload is too large")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become 500 so internal details never reach the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gantt.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, gantt.ErrBoardFull):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, gantt.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, gantt.ErrCalendarUnavailable.Error())
	case errors.Is(err, gantt.ErrEmptyName),
		errors.Is(err, gantt.ErrMissingDates),
		errors.Is(err, gantt.ErrInvalidDateRange),
		errors.Is(err, gantt.ErrInvalidProgress),
		errors.Is(err, gantt.ErrInvalidColor),
		errors.Is(err, gantt.ErrSpanTooLarge),
		errors.Is(err, gantt.ErrInvalidPosition),
		errors.Is(err, gantt.ErrEmptyICS),
		errors.Is(err, gantt.ErrInvalidICS),
		errors.Is(err, gantt.ErrInvalidImportWindow),
		errors.Is(err, timeline.ErrUnknownScale),
		errors.Is(err, timeline.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
