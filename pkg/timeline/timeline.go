package timeline

import (
	"math"
	"time"
)

// ComputeDateRange returns the aligned range covering every start and end
// date in tasks, using DefaultOptions.
func ComputeDateRange(tasks []Task, scale Scale) (DateRange, error) {
	return DefaultOptions().ComputeDateRange(tasks, scale)
}

// ComputeDateRange returns the aligned range covering every start and end
// date in tasks. It returns ErrNoTasks for an empty slice.
func (o Options) ComputeDateRange(tasks []Task, scale Scale) (DateRange, error) {
	if len(tasks) == 0 {
		return DateRange{}, ErrNoTasks
	}
	if !scale.Valid() {
		return DateRange{}, ErrUnknownScale
	}

	rawMin, rawMax := tasks[0].Start, tasks[0].Start
	for _, t := range tasks {
		rawMin = MinDate(rawMin, MinDate(t.Start, t.End))
		rawMax = MaxDate(rawMax, MaxDate(t.Start, t.End))
	}

	var r DateRange
	switch scale {
	case ScaleDay:
		pad := max(o.DayPadding, 0)
		r.Min = rawMin.AddDays(-pad)
		r.Max = rawMax.AddDays(pad)
		r.TotalUnits = UnitDistance(r.Min, r.Max, scale)
	case ScaleWeek:
		r.Min = startOfWeek(rawMin)
		r.Max = endOfWeek(rawMax)
		r.TotalUnits = UnitDistance(r.Min, r.Max, scale)
	case ScaleMonth:
		r.Min = rawMin.FirstOfMonth()
		r.Max = rawMax.LastOfMonth()
		// Unlike Day and Week, the month count is inclusive: a range inside
		// one month has one unit, not zero, so bars in it get a real width.
		r.TotalUnits = UnitDistance(r.Min, r.Max, scale) + 1
	}
	return r, nil
}

// UnitDistance returns the number of scale units from a to b.
//
// Day is the plain day difference. Week is the day difference divided by 7
// and rounded up, so any partial week counts as a whole one. Month only looks
// at the (year, month) pair and ignores the day of month.
//
// A scale that is not Valid yields 0.
func UnitDistance(a, b Date, scale Scale) int {
	switch scale {
	case ScaleDay:
		return a.DaysUntil(b)
	case ScaleWeek:
		return int(math.Ceil(float64(a.DaysUntil(b)) / 7))
	case ScaleMonth:
		return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	}
	return 0
}

// AxisLabels returns the header labels from min to max inclusive: one per day
// ("MM/DD"), per 7-day bucket starting at min ("MM/DD"), or per calendar month
// ("YYYY/MM").
//
// A scale that is not Valid yields nil.
func AxisLabels(min, max Date, scale Scale) []string {
	if !scale.Valid() {
		return nil
	}
	labels := make([]string, 0)
	switch scale {
	case ScaleDay:
		for d := min; !d.After(max); d = d.AddDays(1) {
			labels = append(labels, d.Format(dayLabelLayout))
		}
	case ScaleWeek:
		for d := min; !d.After(max); d = d.AddDays(7) {
			labels = append(labels, d.Format(dayLabelLayout))
		}
	case ScaleMonth:
		last := max.FirstOfMonth()
		for d := min.FirstOfMonth(); !d.After(last); d = d.AddMonths(1) {
			labels = append(labels, d.Format(monthLabelLayout))
		}
	}
	return labels
}

// startOfWeek returns the Monday on or before d. Sunday belongs to the week
// that started six days earlier.
func startOfWeek(d Date) Date {
	wd := d.Weekday()
	if wd == time.Sunday {
		return d.AddDays(-6)
	}
	return d.AddDays(-(int(wd) - 1))
}

// endOfWeek returns the Sunday on or after d.
func endOfWeek(d Date) Date {
	wd := d.Weekday()
	if wd == time.Sunday {
		return d
	}
	return d.AddDays(7 - int(wd))
}
