package http

import (
	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/model"
	"gantt-timeline/pkg/response"
	"gantt-timeline/pkg/timeline"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// --- Request DTOs ---

type taskReq struct {
	Name     string        `json:"name"     binding:"required,max=255"`
	Start    timeline.Date `json:"start"    swaggertype:"string" example:"2024-06-01"`
	End      timeline.Date `json:"end"      swaggertype:"string" example:"2024-06-03"`
	Progress int           `json:"progress" binding:"min=0,max=100"`
	Color    string        `json:"color"    example:"#4A90E2"`
}

func (r taskReq) toInput() gantt.CreateTaskInput {
	return gantt.CreateTaskInput{
		Name:     r.Name,
		Start:    r.Start,
		End:      r.End,
		Progress: r.Progress,
		Color:    r.Color,
	}
}

// ---

type layoutReq struct {
	Tasks []taskReq `json:"tasks" binding:"dive"`
	Scale string    `json:"scale" example:"day"`
	Today string    `json:"today" example:"2024-06-02"`

	scale timeline.Scale
	today timeline.Date
}

func (r *layoutReq) validate(resolve dateResolver) (err error) {
	r.scale, r.today, err = parseScaleAndToday(resolve, r.Scale, r.Today)
	return err
}

func (r layoutReq) toInput() gantt.PreviewInput {
	tasks := make([]gantt.CreateTaskInput, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toInput()
	}
	return gantt.PreviewInput{
		Tasks: tasks,
		Scale: r.scale,
		Today: r.today,
	}
}

// ---

type chartReq struct {
	Scale string `form:"scale"`
	Today string `form:"today"`

	scale timeline.Scale
	today timeline.Date
}

func (r *chartReq) validate(resolve dateResolver) (err error) {
	r.scale, r.today, err = parseScaleAndToday(resolve, r.Scale, r.Today)
	return err
}

func (r chartReq) toInput() gantt.ChartInput {
	return gantt.ChartInput{Scale: r.scale, Today: r.today}
}

// dateResolver turns a query or body date into a calendar date. Besides
// YYYY-MM-DD it accepts relative expressions such as "tomorrow".
type dateResolver func(raw string) (timeline.Date, error)

// parseScaleAndToday leaves blank values as zero so the use case applies
// its defaults.
func parseScaleAndToday(resolve dateResolver, rawScale, rawToday string) (timeline.Scale, timeline.Date, error) {
	var (
		scale timeline.Scale
		today timeline.Date
		err   error
	)
	if rawScale != "" {
		if scale, err = timeline.ParseScale(rawScale); err != nil {
			return scale, today, err
		}
	}
	if rawToday != "" {
		if today, err = resolve(rawToday); err != nil {
			return scale, today, err
		}
	}
	return scale, today, nil
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() gantt.ListTasksInput {
	limit := r.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return gantt.ListTasksInput{Limit: limit, Offset: r.Offset}
}

// ---

type updateReq struct {
	ID       string         `json:"-"` // populated from URI param
	Name     *string        `json:"name"     binding:"omitempty,max=255"`
	Start    *timeline.Date `json:"start"    swaggertype:"string"`
	End      *timeline.Date `json:"end"      swaggertype:"string"`
	Progress *int           `json:"progress" binding:"omitempty,min=0,max=100"`
	Color    *string        `json:"color"`
}

func (r updateReq) toInput() gantt.UpdateTaskInput {
	return gantt.UpdateTaskInput{
		ID:       r.ID,
		Name:     r.Name,
		Start:    r.Start,
		End:      r.End,
		Progress: r.Progress,
		Color:    r.Color,
	}
}

// ---

type moveReq struct {
	ID       string `json:"-"`
	Position *int   `json:"position" binding:"required,min=0"`
}

func (r moveReq) toInput() gantt.MoveTaskInput {
	return gantt.MoveTaskInput{ID: r.ID, Position: *r.Position}
}

// ---

type importWindowReq struct {
	From string `form:"from" json:"from" example:"today"`
	To   string `form:"to"   json:"to"   example:"in 1 month"`

	from timeline.Date
	to   timeline.Date
}

func (r *importWindowReq) validate(resolve dateResolver) (err error) {
	if r.From != "" {
		if r.from, err = resolve(r.From); err != nil {
			return err
		}
	}
	if r.To != "" {
		if r.to, err = resolve(r.To); err != nil {
			return err
		}
	}
	return nil
}

type importICSReq struct {
	importWindowReq
	Body []byte
}

func (r importICSReq) toInput() gantt.ImportICSInput {
	return gantt.ImportICSInput{Body: r.Body, From: r.from, To: r.to}
}

type importCalendarReq struct {
	importWindowReq
	CalendarID string `json:"calendar_id" example:"primary"`
}

func (r importCalendarReq) toInput() gantt.ImportCalendarInput {
	return gantt.ImportCalendarInput{CalendarID: r.CalendarID, From: r.from, To: r.to}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Start     string             `json:"start"`
	End       string             `json:"end"`
	Progress  int                `json:"progress"`
	Color     string             `json:"color"`
	Source    string             `json:"source"`
	SourceRef string             `json:"source_ref,omitempty"`
	CreatedAt response.Timestamp `json:"created_at" swaggertype:"string" example:"2024-06-01T09:00:00Z"`
	UpdatedAt response.Timestamp `json:"updated_at" swaggertype:"string" example:"2024-06-01T09:00:00Z"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Name:      t.Name,
		Start:     t.Start.String(),
		End:       t.End.String(),
		Progress:  t.Progress,
		Color:     t.Color,
		Source:    string(t.Source),
		SourceRef: t.SourceRef,
		CreatedAt: response.Timestamp(t.CreatedAt),
		UpdatedAt: response.Timestamp(t.UpdatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskItemResp(t model.Task) taskItemResp {
	return taskItemResp{Task: newTaskResp(t)}
}

type barResp struct {
	Offset       float64 `json:"offset"`
	Width        float64 `json:"width"`
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
}

type rowResp struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Progress int     `json:"progress"`
	Color    string  `json:"color"`
	Bar      barResp `json:"bar"`
}

type chartResp struct {
	Empty        bool      `json:"empty"`
	Scale        string    `json:"scale"`
	Min          string    `json:"min,omitempty"`
	Max          string    `json:"max,omitempty"`
	TotalUnits   int       `json:"total_units"`
	StartCaption string    `json:"start_caption,omitempty"`
	EndCaption   string    `json:"end_caption,omitempty"`
	Labels       []string  `json:"labels"`
	Rows         []rowResp `json:"rows"`
	Today        string    `json:"today"`
	TodayOffset  *float64  `json:"today_offset"` // null when today is outside the range
}

func (h *handler) newChartResp(out gantt.ChartOutput) chartResp {
	res := out.Layout
	rows := make([]rowResp, len(out.Rows))
	for i, r := range out.Rows {
		rows[i] = rowResp{
			ID:       r.Task.ID,
			Name:     r.Task.Name,
			Start:    r.Task.Start.String(),
			End:      r.Task.End.String(),
			Progress: r.Task.Progress,
			Color:    r.Task.Color,
			Bar: barResp{
				Offset:       r.Bar.Offset,
				Width:        r.Bar.Width,
				LeftPercent:  r.Bar.LeftPercent(),
				WidthPercent: r.Bar.WidthPercent(),
			},
		}
	}

	resp := chartResp{
		Empty:        res.Empty,
		Scale:        res.Scale.String(),
		TotalUnits:   res.Range.TotalUnits,
		StartCaption: res.StartCaption,
		EndCaption:   res.EndCaption,
		Labels:       res.Labels,
		Rows:         rows,
		Today:        out.Today.String(),
	}
	if resp.Labels == nil {
		resp.Labels = []string{}
	}
	if !res.Empty {
		resp.Min = res.Range.Min.String()
		resp.Max = res.Range.Max.String()
	}
	if res.HasToday {
		offset := res.TodayOffset
		resp.TodayOffset = &offset
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out gantt.ListTasksOutput) listResp {
	return listResp{
		Tasks:  newTaskResps(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type clearResp struct {
	Removed int `json:"removed"`
}

type importResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newImportResp(out gantt.ImportOutput) importResp {
	return importResp{Tasks: newTaskResps(out.Tasks), Count: out.Count}
}
