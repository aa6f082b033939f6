package scenes

import (
	"fmt"
	"math"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// Projection shows a point expressed in a rotated local frame and rebuilt
// from its local coordinates.
type Projection struct {
	Basis geometry.Basis
	Point math3d.Vec3
}

// NewProjectionFromConfig places a frame tilted 30° about Z at (1, 0, 0).
func NewProjectionFromConfig(_ *config.Config) (Scene, error) {
	return &Projection{
		Basis: geometry.RotatedBasis(math3d.V3(1, 0, 0), math3d.Forward(), math.Pi/6),
		Point: math3d.V3(2.5, 1.5, 0),
	}, nil
}

// Name returns "projection".
func (p *Projection) Name() string { return "projection" }

// Build draws the local axes and the point projected onto each.
func (p *Projection) Build() (*render.DrawList, error) {
	d := render.NewDrawList()
	b := p.Basis

	x, y := geometry.WorldToLocal(b, p.Point)
	onX := geometry.LocalToWorld(b, x, 0)
	onY := geometry.LocalToWorld(b, 0, y)
	rebuilt := geometry.LocalToWorld(b, x, y)

	axes(d, b, 1)
	d.Line(b.Origin, onX, geometry.Red)
	d.Line(b.Origin, onY, geometry.Green)
	d.DottedLine(p.Point, onX, geometry.Grey)
	d.DottedLine(p.Point, onY, geometry.Grey)
	d.Line(b.Origin, p.Point, geometry.White)

	d.Sphere(p.Point, markerRadius, geometry.White)
	d.Sphere(rebuilt, markerRadius*0.6, geometry.Cyan)
	d.Label(p.Point, fmt.Sprintf("local (%.2f, %.2f)", x, y), geometry.White)
	d.Label(b.Origin, "origin", geometry.Grey)
	return d, nil
}
