package scenes

import (
	"fmt"
	"math"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// FOV widens a camera cone until every sphere in front of it is in view.
type FOV struct {
	Camera    math3d.Vec3
	Direction math3d.Vec3
	Spheres   []geometry.Sphere
}

// NewFOVFromConfig returns the fixed three-sphere layout.
func NewFOVFromConfig(_ *config.Config) (Scene, error) {
	return &FOV{
		Camera:    math3d.V3(0, 0, 6),
		Direction: math3d.V3(0, 0, -1),
		Spheres: []geometry.Sphere{
			{Center: math3d.V3(-1.5, 0.5, 0), Radius: 0.5},
			{Center: math3d.V3(1, -1, -1), Radius: 0.8},
			{Center: math3d.V3(0.5, 1.5, 1), Radius: 0.3},
		},
	}, nil
}

// Name returns "fov".
func (f *FOV) Name() string { return "fov" }

// Build draws the spheres, their edge points and the fitted view cone.
func (f *FOV) Build() (*render.DrawList, error) {
	d := render.NewDrawList()
	for _, s := range f.Spheres {
		d.Sphere(s.Center, s.Radius, geometry.Grey)
	}
	d.Sphere(f.Camera, markerRadius, geometry.White)

	fov, ok := geometry.AdaptiveFOV(f.Camera, f.Direction, f.Spheres)
	if !ok {
		d.Label(f.Camera, "nothing in view", geometry.Red)
		return d, nil
	}

	dir := f.Direction.Normalize()
	for _, e := range fov.Edges {
		d.DottedLine(f.Camera, e, geometry.Grey)
		d.Sphere(e, markerRadius*0.6, geometry.Cyan)
	}
	d.Line(f.Camera, fov.Widest, geometry.Yellow)
	d.Ray(f.Camera, dir.Scale(fov.Adjacent), geometry.Green)

	// Half angle swept from the view direction toward the widest point.
	axis := dir.Cross(fov.Widest.Sub(f.Camera).Normalize())
	if axis.Len() > 1e-9 {
		d.SolidArc(f.Camera, axis, dir, fov.Angle*90/math.Pi, 1, geometry.Green)
	}

	// Cone rim at the widest sphere's depth.
	rim := math.Tan(fov.Angle/2) * fov.Adjacent
	d.Disc(f.Camera.Add(dir.Scale(fov.Adjacent)), dir, rim, geometry.Yellow)
	d.Label(f.Camera, fmt.Sprintf("fov %.1f°", fov.Angle*180/math.Pi), geometry.White)
	return d, nil
}
