package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gantt-timeline/pkg/timeline"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoRe        = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves date expressions to calendar dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Today returns the calendar date of base in the parser's timezone.
func (p *Parser) Today(base time.Time) timeline.Date {
	return timeline.DateOf(base.In(p.location))
}

// Parse resolves expr relative to base. Accepted forms:
//
//	2024-06-01
//	today | tomorrow | yesterday
//	in 3 days | in 2 weeks | in 1 month
//	3 days ago | 2 weeks ago | 1 month ago
//	next friday | last monday
//	start of week | end of week | start of month | end of month
//
// Weeks run Monday to Sunday, the same as the week scale.
func (p *Parser) Parse(expr string, base time.Time) (timeline.Date, error) {
	expr = strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	today := p.Today(base)

	switch expr {
	case "":
		return timeline.Date{}, ErrUnknownExpression
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "start of week":
		return today.AddDays(-daysSinceMonday(today)), nil
	case "end of week":
		return today.AddDays(6 - daysSinceMonday(today)), nil
	case "start of month":
		return today.FirstOfMonth(), nil
	case "end of month":
		return today.LastOfMonth(), nil
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		return shift(today, m[1], m[2], 1)
	}
	if m := agoRe.FindStringSubmatch(expr); m != nil {
		return shift(today, m[1], m[2], -1)
	}
	if name, ok := strings.CutPrefix(expr, "next "); ok {
		return nextWeekday(today, name, 1)
	}
	if name, ok := strings.CutPrefix(expr, "last "); ok {
		return nextWeekday(today, name, -1)
	}

	if d, err := timeline.ParseDate(expr); err == nil {
		return d, nil
	}
	return timeline.Date{}, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

func shift(today timeline.Date, rawAmount, unit string, sign int) (timeline.Date, error) {
	amount, err := strconv.Atoi(rawAmount)
	if err != nil {
		return timeline.Date{}, fmt.Errorf("%w: amount %q", ErrUnknownExpression, rawAmount)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(amount * 7), nil
	case strings.HasPrefix(unit, "month"):
		return today.AddMonths(amount), nil
	}
	return timeline.Date{}, fmt.Errorf("%w: %w %q", ErrUnknownExpression, errUnknownUnit, unit)
}

// nextWeekday finds the closest matching weekday strictly after (dir 1) or
// strictly before (dir -1) today.
func nextWeekday(today timeline.Date, name string, dir int) (timeline.Date, error) {
	target, ok := weekdays[name]
	if !ok {
		return timeline.Date{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpression, name)
	}

	diff := (int(target) - int(today.Weekday())) * dir
	if diff <= 0 {
		diff += 7
	}
	return today.AddDays(diff * dir), nil
}

func daysSinceMonday(d timeline.Date) int {
	return (int(d.Weekday()) + 6) % 7
}
