package timeline

// LayoutTask places one task inside r.
//
// A range with zero units cannot be divided, so the task then gets the whole
// width. Bars are kept inside the range: the offset never passes the last unit
// column and the width is cut at the range end. A task whose end precedes its
// start is not corrected and may come out with a zero or negative width. A
// scale that is not Valid gets the same full-width bar as a zero-unit range.
func LayoutTask(task Task, r DateRange, scale Scale) Bar {
	if r.TotalUnits <= 0 || !scale.Valid() {
		return Bar{TaskID: task.ID, Offset: 0, Width: 1}
	}

	total := float64(r.TotalUnits)
	offset := float64(UnitDistance(r.Min, task.Start, scale)) / total
	duration := UnitDistance(task.Start, task.End, scale) + 1
	width := float64(duration) / total

	if last := 1 - 1/total; offset > last {
		offset = last
	}
	if offset+width > 1 {
		width = 1 - offset
	}
	return Bar{TaskID: task.ID, Offset: offset, Width: width}
}

// TodayOffset returns the fractional position of today inside r, or false
// when today lies outside it.
func TodayOffset(today Date, r DateRange, scale Scale) (float64, bool) {
	if today.Before(r.Min) || today.After(r.Max) {
		return 0, false
	}
	if r.TotalUnits <= 0 {
		return 0, true
	}
	return float64(UnitDistance(r.Min, today, scale)) / float64(r.TotalUnits), true
}

// Layout computes a full chart with DefaultOptions.
func Layout(tasks []Task, scale Scale, today Date) (Result, error) {
	return DefaultOptions().Layout(tasks, scale, today)
}

// Layout computes the range, axis labels, bars and today marker for tasks.
// An empty task list yields an Empty result rather than an error.
func (o Options) Layout(tasks []Task, scale Scale, today Date) (Result, error) {
	if !scale.Valid() {
		return Result{}, ErrUnknownScale
	}
	if len(tasks) == 0 {
		return Result{Empty: true, Scale: scale, Labels: []string{}, Bars: []Bar{}}, nil
	}

	r, err := o.ComputeDateRange(tasks, scale)
	if err != nil {
		return Result{}, err
	}

	bars := make([]Bar, len(tasks))
	for i, t := range tasks {
		bars[i] = LayoutTask(t, r, scale)
	}

	res := Result{
		Scale:        scale,
		Range:        r,
		Labels:       AxisLabels(r.Min, r.Max, scale),
		Bars:         bars,
		StartCaption: r.Min.Format(captionLabelLayout),
		EndCaption:   r.Max.Format(captionLabelLayout),
	}
	res.TodayOffset, res.HasToday = TodayOffset(today, r, scale)
	return res, nil
}
