package ics

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultMaxOccurrences is the per-event cap used when none is configured.
const DefaultMaxOccurrences = 500

// maxSkippedInstances bounds how many instances before the window are walked
// for one event. A dense rule that started long ago is reported as truncated.
const maxSkippedInstances = 100_000

// Expand turns events into concrete occurrences overlapping the window.
// Recurring events are expanded through their RRULE with EXDATEs removed.
// An RRULE that cannot be parsed falls back to the single base instance.
func Expand(events []Event, cfg ExpandConfig) (ExpandResult, error) {
	var result ExpandResult
	if cfg.To.Before(cfg.From) {
		return result, ErrInvalidWindow
	}
	if cfg.MaxOccurrences <= 0 {
		cfg.MaxOccurrences = DefaultMaxOccurrences
	}

	result.Occurrences = make([]Occurrence, 0, len(events))
	for _, ev := range events {
		occ, truncated := expandEvent(ev, cfg)
		result.Occurrences = append(result.Occurrences, occ...)
		if truncated {
			result.Truncated = append(result.Truncated, ev.UID)
		}
	}
	return result, nil
}

func expandEvent(ev Event, cfg ExpandConfig) ([]Occurrence, bool) {
	if ev.RRule == "" {
		return expandSingle(ev, cfg), false
	}

	set, err := ruleSet(ev)
	if err != nil {
		return expandSingle(ev, cfg), false
	}

	dur := ev.End.Sub(ev.Start)
	// Widen the lower bound so instances that started before From but still
	// run into the window are kept.
	after := cfg.From.Add(-dur)

	out := make([]Occurrence, 0, min(cfg.MaxOccurrences, 64))
	next := set.Iterator()
	for skipped := 0; ; {
		s, ok := next()
		if !ok || s.After(cfg.To) {
			return out, false
		}
		if s.Before(after) {
			skipped++
			if skipped > maxSkippedInstances {
				return out, true
			}
			continue
		}

		o := occurrence(ev, s, s.Add(dur))
		if !overlaps(o, cfg) {
			continue
		}
		if len(out) == cfg.MaxOccurrences {
			return out, true
		}
		out = append(out, o)
	}
}

func ruleSet(ev Event) (*rrule.Set, error) {
	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return nil, fmt.Errorf("ics: rrule %q: %w", ev.RRule, err)
	}
	r.DTStart(ev.Start)

	set := &rrule.Set{}
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}
	return set, nil
}

func expandSingle(ev Event, cfg ExpandConfig) []Occurrence {
	o := occurrence(ev, ev.Start, ev.End)
	if !overlaps(o, cfg) {
		return nil
	}
	return []Occurrence{o}
}

func occurrence(ev Event, start, end time.Time) Occurrence {
	return Occurrence{
		UID:     ev.UID,
		Summary: ev.Summary,
		Start:   start,
		End:     end,
		AllDay:  ev.AllDay,
	}
}

// overlaps treats the occurrence as [Start, End) and the window as [From, To].
func overlaps(o Occurrence, cfg ExpandConfig) bool {
	if o.Start.After(cfg.To) {
		return false
	}
	if o.End.After(o.Start) {
		return o.End.After(cfg.From)
	}
	return !o.Start.Before(cfg.From)
}
