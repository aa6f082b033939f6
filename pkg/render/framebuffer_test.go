package render

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"
)

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	red := RGB(255, 0, 0)
	fb.DrawLine(0, 0, 9, 0, red)

	for x := 0; x < 10; x++ {
		if fb.GetPixel(x, 0) != red {
			t.Fatalf("pixel (%d,0) = %v, want red", x, fb.GetPixel(x, 0))
		}
	}
	if fb.GetPixel(0, 1) != (color.RGBA{}) {
		t.Error("line should not touch row 1")
	}
}

func TestDrawDottedLine(t *testing.T) {
	fb := NewFramebuffer(10, 1)
	c := RGB(0, 255, 0)
	fb.DrawDottedLine(0, 0, 9, 0, 2, c)

	want := []bool{true, true, false, false, true, true, false, false, true, true}
	for x, on := range want {
		if got := fb.GetPixel(x, 0) == c; got != on {
			t.Errorf("pixel %d set = %v, want %v", x, got, on)
		}
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           [4]float64
		ok             bool
	}{
		{"inside", 1, 1, 5, 5, [4]float64{1, 1, 5, 5}, true},
		{"horizontal through", -10, 5, 20, 5, [4]float64{0, 5, 9, 5}, true},
		{"vertical through", 3, -4, 3, 40, [4]float64{3, 0, 3, 9}, true},
		{"fully left", -5, 0, -1, 9, [4]float64{}, false},
		{"fully below", 0, 12, 9, 30, [4]float64{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipSegment(tc.x0, tc.y0, tc.x1, tc.y1, 9, 9)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			got := [4]float64{x0, y0, x1, y1}
			for i := range got {
				if math.Abs(got[i]-tc.want[i]) > 1e-9 {
					t.Errorf("clip = %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestFillTriangle(t *testing.T) {
	c := RGB(0, 0, 255)
	for _, name := range []string{"counter-clockwise", "clockwise"} {
		t.Run(name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			if name == "clockwise" {
				fb.FillTriangle(0, 0, 0, 10, 10, 0, c)
			} else {
				fb.FillTriangle(0, 0, 10, 0, 0, 10, c)
			}
			if fb.GetPixel(1, 1) != c {
				t.Error("pixel inside the triangle should be filled")
			}
			if fb.GetPixel(8, 8) == c {
				t.Error("pixel beyond the hypotenuse should stay empty")
			}
		})
	}

	t.Run("degenerate", func(t *testing.T) {
		fb := NewFramebuffer(10, 10)
		fb.FillTriangle(0, 0, 5, 5, 9, 9, c)
		for i, p := range fb.Pixels {
			if p == c {
				t.Fatalf("pixel %d filled by a zero-area triangle", i)
			}
		}
	})
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(RGB(10, 20, 30))
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if err := fb.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Resize(3, 4)
	if len(fb.Pixels) != 12 {
		t.Errorf("len(Pixels) = %d, want 12", len(fb.Pixels))
	}
}

func BenchmarkDrawSegment(b *testing.B) {
	fb := NewFramebuffer(200, 100)
	c := RGB(255, 255, 255)
	for b.Loop() {
		fb.DrawSegment(-50, -20, 260, 140, false, c)
	}
}
