package datemath

import (
	"errors"
	"fmt"

	"gantt-timeline/pkg/timeline"
)

// ErrUnknownExpression wraps timeline.ErrInvalidDate so callers can treat
// both the same way.
var ErrUnknownExpression = fmt.Errorf("%w: unrecognised date expression", timeline.ErrInvalidDate)

var errUnknownUnit = errors.New("unknown unit")
