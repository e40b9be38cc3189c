package usecase_test

import (
	"errors"
	"testing"

	"gantt-timeline/internal/gantt"
	"gantt-timeline/internal/gantt/repository/memory"
	"gantt-timeline/internal/gantt/usecase"
)

func TestNew(t *testing.T) {
	repo := memory.New(&mockLogger{}, 5)

	tests := []struct {
		name    string
		cfg     usecase.Config
		wantErr bool
		wantIs  error
	}{
		{name: "zero config uses defaults", cfg: usecase.Config{}},
		{name: "negative padding", cfg: usecase.Config{DayPadding: -1}, wantErr: true},
		{name: "bad default color", cfg: usecase.Config{DefaultColor: "blue"}, wantErr: true, wantIs: gantt.ErrInvalidColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, err := usecase.New(&mockLogger{}, repo, nil, tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && uc == nil {
				t.Fatal("New() returned nil use case")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Errorf("error = %v, want %v", err, tc.wantIs)
			}
		})
	}
}
