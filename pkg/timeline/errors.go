package timeline

import "errors"

var (
	ErrNoTasks      = errors.New("timeline: no tasks to lay out")
	ErrUnknownScale = errors.New("timeline: unknown scale")
	ErrInvalidDate  = errors.New("timeline: invalid date")
)
