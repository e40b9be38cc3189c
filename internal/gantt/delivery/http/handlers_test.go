package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-timeline/internal/gantt"
	ganttHTTP "gantt-timeline/internal/gantt/delivery/http"
	"gantt-timeline/internal/gantt/repository/memory"
	"gantt-timeline/internal/gantt/usecase"
	"gantt-timeline/pkg/datemath"
	"gantt-timeline/pkg/log"
	"gantt-timeline/pkg/timeline"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type chartData struct {
	Empty        bool     `json:"empty"`
	Scale        string   `json:"scale"`
	Min          string   `json:"min"`
	Max          string   `json:"max"`
	TotalUnits   int      `json:"total_units"`
	StartCaption string   `json:"start_caption"`
	EndCaption   string   `json:"end_caption"`
	Labels       []string `json:"labels"`
	Rows         []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Bar   struct {
			Offset       float64 `json:"offset"`
			Width        float64 `json:"width"`
			WidthPercent float64 `json:"width_percent"`
		} `json:"bar"`
	} `json:"rows"`
	Today       string   `json:"today"`
	TodayOffset *float64 `json:"today_offset"`
}

type taskData struct {
	Task struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Start    string `json:"start"`
		End      string `json:"end"`
		Progress int    `json:"progress"`
		Color    string `json:"color"`
		Source   string `json:"source"`
	} `json:"task"`
}

func newRouter(t *testing.T, uc gantt.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ganttHTTP.RegisterRoutes(r.Group("/api/v1/gantt"), ganttHTTP.New(log.NewNop(), uc, datemath.NewParserIn(time.UTC)))
	return r
}

func newUseCase(t *testing.T, maxTasks int) gantt.UseCase {
	t.Helper()
	uc, err := usecase.New(log.NewNop(), memory.New(log.NewNop(), maxTasks), nil, usecase.Config{
		DayPadding: timeline.DefaultDayPadding,
		Now:        func() time.Time { return time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("usecase.New() error: %v", err)
	}
	return uc
}

func do(t *testing.T, r *gin.Engine, method, path, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestLayout(t *testing.T) {
	r := newRouter(t, newUseCase(t, 10))

	w, env := do(t, r, http.MethodPost, "/api/v1/gantt/layout", "application/json", `{
		"scale": "day",
		"tasks": [{"name": "Design", "start": "2024-06-01", "end": "2024-06-03", "progress": 50}]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	chart := decode[chartData](t, env.Data)
	if chart.Scale != "day" || chart.Min != "2024-05-30" || chart.Max != "2024-06-05" || chart.TotalUnits != 6 {
		t.Errorf("range = %+v", chart)
	}
	if chart.StartCaption != "2024/05/30" || chart.EndCaption != "2024/06/05" {
		t.Errorf("captions = %s / %s", chart.StartCaption, chart.EndCaption)
	}
	if len(chart.Labels) != 7 || chart.Labels[0] != "05/30" {
		t.Errorf("labels = %v", chart.Labels)
	}
	if len(chart.Rows) != 1 || chart.Rows[0].Color != "#4A90E2" || chart.Rows[0].Bar.WidthPercent != 50 {
		t.Errorf("rows = %+v", chart.Rows)
	}
	if chart.Today != "2024-06-02" || chart.TodayOffset == nil || *chart.TodayOffset != 0.5 {
		t.Errorf("today = %s offset = %v", chart.Today, chart.TodayOffset)
	}
}

func TestLayoutBadRequests(t *testing.T) {
	r := newRouter(t, newUseCase(t, 10))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"tasks": [`},
		{"unknown scale", `{"scale": "year", "tasks": []}`},
		{"bad today", `{"today": "06/02/2024", "tasks": []}`},
		{"unknown relative today", `{"today": "next year", "tasks": []}`},
		{"bad date", `{"tasks": [{"name": "a", "start": "2024-13-01", "end": "2024-06-03"}]}`},
		{"missing name", `{"tasks": [{"start": "2024-06-01", "end": "2024-06-03"}]}`},
		{"end before start", `{"tasks": [{"name": "a", "start": "2024-06-05", "end": "2024-06-03"}]}`},
		{"progress out of range", `{"tasks": [{"name": "a", "start": "2024-06-01", "end": "2024-06-03", "progress": 120}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/api/v1/gantt/layout", "application/json", tc.body)
			if w.Code != http.StatusBadRequest || env.ErrorCode != http.StatusBadRequest {
				t.Errorf("status = %d code = %d, body = %s", w.Code, env.ErrorCode, w.Body.String())
			}
		})
	}
}

func TestLayoutEmpty(t *testing.T) {
	r := newRouter(t, newUseCase(t, 10))

	w, env := do(t, r, http.MethodPost, "/api/v1/gantt/layout", "application/json", `{"scale": "week", "tasks": []}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	chart := decode[chartData](t, env.Data)
	if !chart.Empty || len(chart.Labels) != 0 || len(chart.Rows) != 0 || chart.Min != "" || chart.TodayOffset != nil {
		t.Errorf("empty chart = %+v", chart)
	}
}

func TestTaskLifecycle(t *testing.T) {
	r := newRouter(t, newUseCase(t, 2))

	w, env := do(t, r, http.MethodPost, "/api/v1/gantt/tasks", "application/json",
		`{"name": "Build", "start": "2024-06-03", "end": "2024-06-07", "color": "#112233"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	build := decode[taskData](t, env.Data).Task
	if build.ID == "" || build.Source != "manual" || build.Color != "#112233" {
		t.Errorf("created = %+v", build)
	}

	_, env = do(t, r, http.MethodPost, "/api/v1/gantt/tasks", "application/json",
		`{"name": "Test", "start": "2024-06-08", "end": "2024-06-09"}`)
	test := decode[taskData](t, env.Data).Task

	w, _ = do(t, r, http.MethodPost, "/api/v1/gantt/tasks", "application/json",
		`{"name": "Overflow", "start": "2024-06-08", "end": "2024-06-09"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("board full status = %d, want 409", w.Code)
	}

	w, env = do(t, r, http.MethodPut, "/api/v1/gantt/tasks/"+build.ID, "application/json", `{"progress": 75}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := decode[taskData](t, env.Data).Task; got.Progress != 75 || got.Name != "Build" {
		t.Errorf("updated = %+v", got)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/gantt/tasks/"+test.ID+"/move", "application/json", `{"position": 0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("move status = %d, body = %s", w.Code, w.Body.String())
	}

	w, env = do(t, r, http.MethodGet, "/api/v1/gantt/chart?scale=week&today=2024-06-05", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("chart status = %d, body = %s", w.Code, w.Body.String())
	}
	chart := decode[chartData](t, env.Data)
	if len(chart.Rows) != 2 || chart.Rows[0].ID != test.ID || chart.Rows[1].ID != build.ID {
		t.Errorf("row order = %+v", chart.Rows)
	}
	if chart.Labels[0] != "06/03" || chart.Min != "2024-06-03" || chart.Max != "2024-06-09" {
		t.Errorf("week range = %s..%s labels %v", chart.Min, chart.Max, chart.Labels)
	}

	w, env = do(t, r, http.MethodGet, "/api/v1/gantt/tasks?limit=1&offset=1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	list := decode[struct {
		Tasks []struct {
			ID string `json:"id"`
		} `json:"tasks"`
		Total int `json:"total"`
	}](t, env.Data)
	if list.Total != 2 || len(list.Tasks) != 1 || list.Tasks[0].ID != build.ID {
		t.Errorf("list = %+v", list)
	}

	w, _ = do(t, r, http.MethodDelete, "/api/v1/gantt/tasks/"+build.ID, "", "")
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	w, _ = do(t, r, http.MethodGet, "/api/v1/gantt/tasks/"+build.ID, "", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("detail after delete status = %d, want 404", w.Code)
	}

	w, env = do(t, r, http.MethodDelete, "/api/v1/gantt/tasks", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}
	if cleared := decode[struct {
		Removed int `json:"removed"`
	}](t, env.Data); cleared.Removed != 1 {
		t.Errorf("removed = %d, want 1", cleared.Removed)
	}
}

func TestTaskErrors(t *testing.T) {
	r := newRouter(t, newUseCase(t, 5))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"update unknown", http.MethodPut, "/api/v1/gantt/tasks/nope", `{"name": "x"}`, http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/api/v1/gantt/tasks/nope", "", http.StatusNotFound},
		{"move without position", http.MethodPost, "/api/v1/gantt/tasks/nope/move", `{}`, http.StatusBadRequest},
		{"move unknown", http.MethodPost, "/api/v1/gantt/tasks/nope/move", `{"position": 0}`, http.StatusNotFound},
		{"bad color", http.MethodPost, "/api/v1/gantt/tasks", `{"name": "a", "start": "2024-06-01", "end": "2024-06-01", "color": "red"}`, http.StatusBadRequest},
		{"missing dates", http.MethodPost, "/api/v1/gantt/tasks", `{"name": "a"}`, http.StatusBadRequest},
		{"chart bad scale", http.MethodGet, "/api/v1/gantt/chart?scale=decade", "", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := do(t, r, tc.method, tc.path, "application/json", tc.body)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

const icsPayload = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//gantt//test//EN\r\n" +
	"BEGIN:VEVENT\r\nUID:offsite\r\nSUMMARY:Team offsite\r\n" +
	"DTSTART;VALUE=DATE:20240603\r\nDTEND;VALUE=DATE:20240606\r\nEND:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestImportICS(t *testing.T) {
	r := newRouter(t, newUseCase(t, 5))

	w, env := do(t, r, http.MethodPost, "/api/v1/gantt/import/ics?from=2024-06-01&to=2024-06-30", "text/calendar", icsPayload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	out := decode[struct {
		Count int `json:"count"`
		Tasks []struct {
			Name   string `json:"name"`
			Start  string `json:"start"`
			End    string `json:"end"`
			Source string `json:"source"`
		} `json:"tasks"`
	}](t, env.Data)
	if out.Count != 1 || out.Tasks[0].Start != "2024-06-03" || out.Tasks[0].End != "2024-06-05" || out.Tasks[0].Source != "ics" {
		t.Errorf("import = %+v", out)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/gantt/import/ics", "text/calendar", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", w.Code)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/gantt/import/ics?from=someday", "text/calendar", icsPayload)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad window status = %d, want 400", w.Code)
	}
}

func TestImportCalendarUnavailable(t *testing.T) {
	r := newRouter(t, newUseCase(t, 5))

	w, env := do(t, r, http.MethodPost, "/api/v1/gantt/import/calendar", "application/json", `{"from": "2024-06-01"}`)
	if w.Code != http.StatusServiceUnavailable || env.ErrorCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d code = %d", w.Code, env.ErrorCode)
	}

	w, _ = do(t, r, http.MethodPost, "/api/v1/gantt/import/calendar", "", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("empty body status = %d, want 503", w.Code)
	}
}

type failingUseCase struct {
	gantt.UseCase
}

func (failingUseCase) Chart(ctx context.Context, input gantt.ChartInput) (gantt.ChartOutput, error) {
	return gantt.ChartOutput{}, errors.New("disk on fire")
}

func TestUnknownErrorIsInternal(t *testing.T) {
	r := newRouter(t, failingUseCase{})

	w, env := do(t, r, http.MethodGet, "/api/v1/gantt/chart", "", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(env.Message, "disk") {
		t.Errorf("internal error leaked: %q", env.Message)
	}
}
