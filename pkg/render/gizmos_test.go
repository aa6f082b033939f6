package render

import (
	"testing"

	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// createTestGizmos creates a square gizmo renderer looking at the origin.
func createTestGizmos(size int) (*Gizmos, *Framebuffer) {
	fb := NewFramebuffer(size, size)
	camera := NewCamera()
	camera.SetAspectRatio(1)
	return NewGizmos(camera, fb), fb
}

func TestGizmosDrawLine(t *testing.T) {
	g, fb := createTestGizmos(40)
	g.Begin(RGB(0, 0, 0))
	g.DrawLine(Line{From: math3d.V3(-1, 0, 0), To: math3d.V3(1, 0, 0), Color: geometry.Red})

	if got := fb.GetPixel(20, 20); got != RGB(255, 0, 0) {
		t.Errorf("center pixel = %v, want red", got)
	}
	if got := fb.GetPixel(20, 5); got != RGB(0, 0, 0) {
		t.Errorf("pixel above the line = %v, want background", got)
	}
}

func TestGizmosLineBehindCamera(t *testing.T) {
	g, fb := createTestGizmos(20)
	g.Begin(RGB(0, 0, 0))
	g.DrawLine(Line{From: math3d.V3(0, 0, 0), To: math3d.V3(0, 0, 50), Color: geometry.White})

	for i, p := range fb.Pixels {
		if p != RGB(0, 0, 0) {
			t.Fatalf("pixel %d drawn for a line crossing the camera plane", i)
		}
	}
}

func TestGizmosSolidArc(t *testing.T) {
	g, fb := createTestGizmos(40)
	g.Begin(RGB(0, 0, 0))
	g.DrawArc(Arc{
		Normal: math3d.Forward(),
		From:   math3d.Right(),
		Angle:  360,
		Radius: 2,
		Color:  geometry.Blue,
		Filled: true,
	})

	if got := fb.GetPixel(20, 20); got != RGB(0, 0, 255) {
		t.Errorf("disc center = %v, want blue", got)
	}
}

func TestGizmosSphere(t *testing.T) {
	g, fb := createTestGizmos(40)
	g.Begin(RGB(0, 0, 0))
	g.DrawSphere(Sphere{Radius: 2, Color: geometry.Green})

	var lit int
	for _, p := range fb.Pixels {
		if p == RGB(0, 255, 0) {
			lit++
		}
	}
	if lit == 0 {
		t.Error("sphere drew no pixels")
	}
}

func TestGizmosLabels(t *testing.T) {
	g, _ := createTestGizmos(40)
	g.Begin(RGB(0, 0, 0))
	g.DrawLabel(Label{Position: math3d.Zero3(), Text: "origin", Color: geometry.White})
	g.DrawLabel(Label{Position: math3d.V3(0, 0, 20), Text: "behind", Color: geometry.White})

	labels := g.Labels()
	if len(labels) != 1 {
		t.Fatalf("len(labels) = %d, want 1", len(labels))
	}
	if labels[0].X != 20 || labels[0].Y != 20 || labels[0].Text != "origin" {
		t.Errorf("label = %+v", labels[0])
	}

	g.Begin(RGB(0, 0, 0))
	if len(g.Labels()) != 0 {
		t.Error("Begin should drop last frame's labels")
	}
}

func TestReplayOntoGizmos(t *testing.T) {
	g, fb := createTestGizmos(40)
	g.Begin(RGB(0, 0, 0))

	d := NewDrawList()
	d.Line(math3d.V3(0, -1, 0), math3d.V3(0, 1, 0), geometry.Yellow)
	d.Replay(g)

	if got := fb.GetPixel(20, 20); got == RGB(0, 0, 0) {
		t.Error("replayed line did not reach the framebuffer")
	}
}

func BenchmarkGizmosSphere(b *testing.B) {
	g, _ := createTestGizmos(120)
	s := Sphere{Radius: 1, Color: geometry.Green}
	for b.Loop() {
		g.DrawSphere(s)
	}
}
