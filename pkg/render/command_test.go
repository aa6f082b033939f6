package render

import (
	"testing"

	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// recorder counts the commands a DrawList replays.
type recorder struct {
	lines, spheres, arcs, labels int
	colors                       []geometry.Color
}

func (r *recorder) DrawLine(l Line) {
	r.lines++
	r.colors = append(r.colors, l.Color)
}

func (r *recorder) DrawSphere(s Sphere) {
	r.spheres++
	r.colors = append(r.colors, s.Color)
}

func (r *recorder) DrawArc(a Arc) {
	r.arcs++
	r.colors = append(r.colors, a.Color)
}

func (r *recorder) DrawLabel(l Label) {
	r.labels++
	r.colors = append(r.colors, l.Color)
}

func TestDrawListReplay(t *testing.T) {
	d := NewDrawList()
	d.Line(math3d.Zero3(), math3d.Up(), geometry.Red)
	d.DottedLine(math3d.Zero3(), math3d.Right(), geometry.Grey)
	d.Sphere(math3d.Up(), 0.1, geometry.Green)
	d.Disc(math3d.Zero3(), math3d.Up(), 1, geometry.Blue)
	d.Label(math3d.Up(), "up", geometry.White)

	rec := &recorder{}
	d.Replay(rec)

	if rec.lines != 2 || rec.spheres != 1 || rec.arcs != 1 || rec.labels != 1 {
		t.Fatalf("replayed %+v", rec)
	}
	want := []geometry.Color{geometry.Red, geometry.Grey, geometry.Green, geometry.Blue, geometry.White}
	for i, c := range want {
		if rec.colors[i] != c {
			t.Errorf("command %d color = %v, want %v", i, rec.colors[i], c)
		}
	}
	if d.Len() != 5 {
		t.Errorf("Len() = %d, want 5", d.Len())
	}
	if labels := d.Labels(); len(labels) != 1 || labels[0].Text != "up" {
		t.Errorf("Labels() = %v", labels)
	}
}

func TestArcPoints(t *testing.T) {
	a := Arc{Normal: math3d.Up(), From: math3d.Right(), Angle: 90, Radius: 2}
	pts := a.Points()

	if len(pts) != 16 {
		t.Fatalf("len(points) = %d, want 16", len(pts))
	}
	if !pts[0].ApproxEqual(math3d.V3(2, 0, 0), 1e-9) {
		t.Errorf("first point = %v", pts[0])
	}
	if !pts[len(pts)-1].ApproxEqual(math3d.V3(0, 0, -2), 1e-9) {
		t.Errorf("last point = %v, want (0, 0, -2)", pts[len(pts)-1])
	}
	for _, p := range pts {
		if d := p.Len(); d < 2-1e-9 || d > 2+1e-9 {
			t.Errorf("point %v off the radius", p)
		}
	}
}

func TestCircleIsClosed(t *testing.T) {
	c := Circle(math3d.V3(1, 2, 3), math3d.Forward(), 0.5, geometry.Cyan)
	pts := c.Points()
	if !pts[0].ApproxEqual(pts[len(pts)-1], 1e-9) {
		t.Errorf("circle not closed: %v vs %v", pts[0], pts[len(pts)-1])
	}
}

func TestDrawListBounds(t *testing.T) {
	d := NewDrawList()
	if _, _, ok := d.Bounds(); ok {
		t.Fatal("empty list should have no bounds")
	}

	d.Line(math3d.V3(-1, 0, 0), math3d.V3(2, 0, 0), geometry.Red)
	d.Sphere(math3d.V3(0, 3, 0), 0.5, geometry.Red)
	lo, hi, ok := d.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if lo.X != -1 || hi.X != 2 || hi.Y != 3.5 || lo.Y != 0 {
		t.Errorf("bounds = %v..%v", lo, hi)
	}
}

func TestDashes(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		want   int
	}{
		{"empty", 0, 0},
		{"one dash", 4, 1},
		{"exact", 24, 2},
		{"partial tail", 26, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Dashes(0, 0, tc.length, 0, 6)
			if len(got) != tc.want {
				t.Fatalf("len(Dashes) = %d, want %d", len(got), tc.want)
			}
			if len(got) > 0 && got[len(got)-1][2] > tc.length {
				t.Errorf("last dash ends at %v past %v", got[len(got)-1][2], tc.length)
			}
		})
	}
}
