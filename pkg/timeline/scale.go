package timeline

import (
	"fmt"
	"strings"
)

// Scale is the unit a timeline is measured in.
type Scale int

const (
	ScaleDay Scale = iota + 1
	ScaleWeek
	ScaleMonth
)

// ParseScale converts "day", "week" or "month" (case-insensitive) to a Scale.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return ScaleDay, nil
	case "week":
		return ScaleWeek, nil
	case "month":
		return ScaleMonth, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, s)
}

// Valid reports whether s is one of the declared scales.
func (s Scale) Valid() bool {
	switch s {
	case ScaleDay, ScaleWeek, ScaleMonth:
		return true
	}
	return false
}

func (s Scale) String() string {
	switch s {
	case ScaleDay:
		return "day"
	case ScaleWeek:
		return "week"
	case ScaleMonth:
		return "month"
	}
	return fmt.Sprintf("scale(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Scale) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScale, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scale) UnmarshalText(b []byte) error {
	v, err := ParseScale(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
