package render

import (
	"testing"

	"github.com/taigrr/gizmo/pkg/geometry"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   geometry.Color
		want Color
	}{
		{"red", geometry.Red, RGB(255, 0, 0)},
		{"grey", geometry.Grey, RGB(128, 128, 128)},
		{"clamped", geometry.Color{R: 2, G: -1, B: 0.5, A: 1}, RGB(255, 0, 128)},
		{"half alpha", geometry.Color{R: 1, A: 0.5}, Color{R: 128, A: 128}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToRGBA(tc.in); got != tc.want {
				t.Errorf("ToRGBA(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
