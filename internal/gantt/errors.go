package gantt

import "errors"

// Domain-specific errors for the gantt package.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmptyName           = errors.New("task name is empty")
	ErrMissingDates        = errors.New("start and end dates are required")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 100")
	ErrInvalidColor        = errors.New("color must be a hex value like #4A90E2")
	ErrSpanTooLarge        = errors.New("tasks span too many days to lay out")
	ErrBoardFull           = errors.New("task board is full")
	ErrInvalidPosition     = errors.New("position is out of range")
	ErrEmptyICS            = errors.New("ics payload is empty")
	ErrInvalidICS          = errors.New("ics payload could not be parsed")
	ErrInvalidImportWindow = errors.New("import window end must not be before its start")
	ErrCalendarUnavailable = errors.New("google calendar is not configured")
)
