package render

import (
	"math"
	"testing"

	"github.com/taigrr/gizmo/pkg/math3d"
)

func TestCameraProject(t *testing.T) {
	cam := NewCamera()
	cam.SetAspectRatio(1)

	x, y, ok := cam.Project(math3d.Zero3(), 100, 100)
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if math.Abs(x-50) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("origin projected to (%v, %v), want (50, 50)", x, y)
	}

	if _, _, ok := cam.Project(math3d.V3(0, 0, 20), 100, 100); ok {
		t.Error("point behind the camera should not project")
	}

	// Off to the side: Project still answers, WorldToScreen rejects.
	far := math3d.V3(100, 0, 0)
	if _, _, ok := cam.Project(far, 100, 100); !ok {
		t.Error("Project should not cull points outside the frustum")
	}
	if _, _, ok := cam.WorldToScreen(far, 100, 100); ok {
		t.Error("WorldToScreen should cull points outside the frustum")
	}
}

func TestCameraOrbit(t *testing.T) {
	tests := []struct {
		name    string
		yaw     float64
		pos     math3d.Vec3
		forward math3d.Vec3
	}{
		{"front", 0, math3d.V3(0, 0, 5), math3d.V3(0, 0, -1)},
		{"right", math.Pi / 2, math3d.V3(5, 0, 0), math3d.V3(-1, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera()
			cam.Orbit(math3d.Zero3(), 5, tc.yaw, 0)
			if !cam.Position.ApproxEqual(tc.pos, 1e-9) {
				t.Errorf("Position = %v, want %v", cam.Position, tc.pos)
			}
			if !cam.Forward().ApproxEqual(tc.forward, 1e-9) {
				t.Errorf("Forward = %v, want %v", cam.Forward(), tc.forward)
			}
		})
	}

	t.Run("pitch clamped", func(t *testing.T) {
		cam := NewCamera()
		cam.Orbit(math3d.Zero3(), 5, 0, math.Pi)
		if cam.Position.Y >= 5 {
			t.Errorf("pitch should be clamped below the pole, got %v", cam.Position)
		}
	})
}

func TestCameraFrame(t *testing.T) {
	cam := NewCamera()
	cam.SetAspectRatio(1)
	lo, hi := math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)
	cam.Frame(lo, hi, 0.3, 0.2)

	for _, p := range []math3d.Vec3{lo.Scale(0.5), hi.Scale(0.5), math3d.Zero3()} {
		if _, _, ok := cam.WorldToScreen(p, 100, 100); !ok {
			t.Errorf("point %v should be visible after Frame", p)
		}
	}
}
