package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// Turret places a box on a sloped surface where a ray from the viewer hits
// it, oriented by the surface normal and the ray.
type Turret struct {
	From   math3d.Vec3
	Hit    math3d.Vec3
	Normal math3d.Vec3
	Size   math3d.Vec3 // full extents in the surface frame
}

// NewTurretFromConfig aims at a 30° slope from above and behind.
func NewTurretFromConfig(_ *config.Config) (Scene, error) {
	return &Turret{
		From:   math3d.V3(-2, 3, 4),
		Hit:    math3d.V3(0, 0, 0),
		Normal: math3d.V3(0.5, 0.866, 0),
		Size:   math3d.V3(0.6, 0.4, 1),
	}, nil
}

// Name returns "turret".
func (t *Turret) Name() string { return "turret" }

// Build draws the surface frame and the turret box placed on it.
func (t *Turret) Build() (*render.DrawList, error) {
	b, err := geometry.SurfaceBasis(t.From, t.Hit, t.Normal)
	if err != nil {
		return nil, fmt.Errorf("build turret: %w", err)
	}

	d := render.NewDrawList()
	d.Line(t.From, t.Hit, geometry.Red)
	d.Sphere(t.From, markerRadius, geometry.White)
	d.Disc(t.Hit, b.Y, 1.5, geometry.Grey)

	// Sit the box on the surface rather than centered in it.
	half := t.Size.Scale(0.5)
	seat := b
	seat.Origin = geometry.LocalToWorld3(b, math3d.V3(0, half.Y, 0))
	wireBox(d, seat, half, geometry.White)
	axes(d, b, 1)
	d.Label(t.Hit, fmt.Sprintf("up %s", formatVec(b.Y)), geometry.Green)
	return d, nil
}
