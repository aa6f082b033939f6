package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// mirrorSize is the radius of the disc drawn for each mirror.
const mirrorSize = 1.5

// Reflection traces a laser between mirrors and draws the construction of
// every bounce.
type Reflection struct {
	Origin      math3d.Vec3
	Direction   math3d.Vec3
	Mirrors     []geometry.Mirror
	MaxBounces  int
	MaxDistance float64
}

// NewReflectionFromConfig sets up two facing mirrors tilted so the beam
// zig-zags between them.
func NewReflectionFromConfig(cfg *config.Config) (Scene, error) {
	return &Reflection{
		Origin:    math3d.V3(-3, 0, 0),
		Direction: math3d.V3(1, 0.6, 0),
		Mirrors: []geometry.Mirror{
			{Point: math3d.V3(0, 2, 0), Normal: math3d.Down()},
			{Point: math3d.V3(0, -2, 0), Normal: math3d.Up()},
		},
		MaxBounces:  cfg.GetMaxBounces(),
		MaxDistance: cfg.GetMaxDistance(),
	}, nil
}

// Name returns "reflection".
func (r *Reflection) Name() string { return "reflection" }

// Build traces the laser and draws the construction at every bounce.
func (r *Reflection) Build() (*render.DrawList, error) {
	legs, err := geometry.TraceMirrors(r.Origin, r.Direction, r.Mirrors, r.MaxBounces, r.MaxDistance)
	if err != nil {
		return nil, fmt.Errorf("build reflection: %w", err)
	}

	d := render.NewDrawList()
	for _, m := range r.Mirrors {
		d.Disc(m.Point, m.Normal, mirrorSize, geometry.Grey)
	}

	d.Sphere(r.Origin, markerRadius, geometry.White)
	for i, leg := range legs {
		d.Line(leg.From, leg.To, geometry.Red)
		if !leg.Hit {
			continue
		}
		c := leg.Construction
		d.Ray(c.Hit, c.Normal, geometry.Green)
		d.Sphere(c.Back, markerRadius, geometry.Yellow)
		d.DottedLine(c.Back, c.Foot, geometry.Grey)
		d.DottedLine(c.Foot, c.OnReflected, geometry.Grey)
		d.Sphere(c.Foot, markerRadius*0.6, geometry.Cyan)
		d.Sphere(c.Mirror, markerRadius*0.6, geometry.Magenta)
		d.Sphere(c.OnReflected, markerRadius, geometry.Yellow)
		d.Label(c.Hit, fmt.Sprintf("#%d out %s", i+1, formatVec(c.Outgoing)), geometry.White)
	}
	return d, nil
}
