package timeline

import (
	"math"
	"testing"
)

func TestStepZoom(t *testing.T) {
	tests := []struct {
		name  string
		level int
		delta int
		want  int
	}{
		{"zoom in", DefaultZoom, 1, 110},
		{"zoom out", DefaultZoom, -1, 90},
		{"clamped at max", 195, 1, MaxZoom},
		{"clamped at min", 55, -1, MinZoom},
		{"already at max", MaxZoom, 3, MaxZoom},
		{"no change", 120, 0, 120},
		{"level below range", 0, 1, MinZoom + ZoomStep},
		{"huge delta", DefaultZoom, math.MaxInt, MaxZoom},
		{"huge negative delta", DefaultZoom, math.MinInt, MinZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepZoom(tt.level, tt.delta); got != tt.want {
				t.Errorf("StepZoom(%d, %d) = %d, want %d", tt.level, tt.delta, got, tt.want)
			}
		})
	}
}

func TestClampZoom(t *testing.T) {
	if got := ClampZoom(10); got != MinZoom {
		t.Errorf("ClampZoom(10) = %d, want %d", got, MinZoom)
	}
	if got := ClampZoom(1000); got != MaxZoom {
		t.Errorf("ClampZoom(1000) = %d, want %d", got, MaxZoom)
	}
}
