package timeline_test

import (
	"errors"
	"testing"

	"gantt-timeline/pkg/timeline"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in      string
		want    timeline.Scale
		wantErr bool
	}{
		{in: "day", want: timeline.ScaleDay},
		{in: "Week", want: timeline.ScaleWeek},
		{in: " MONTH ", want: timeline.ScaleMonth},
		{in: "year", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := timeline.ParseScale(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScale() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, timeline.ErrUnknownScale) {
				t.Errorf("expected ErrUnknownScale, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleText(t *testing.T) {
	for _, s := range []timeline.Scale{timeline.ScaleDay, timeline.ScaleWeek, timeline.ScaleMonth} {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", s, err)
		}
		var back timeline.Scale
		if err := back.UnmarshalText(b); err != nil || back != s {
			t.Errorf("round trip of %v gave %v (%v)", s, back, err)
		}
	}

	if _, err := timeline.Scale(0).MarshalText(); err == nil {
		t.Errorf("expected error marshaling zero scale")
	}
	if timeline.Scale(0).Valid() {
		t.Errorf("zero scale must not be valid")
	}
}
