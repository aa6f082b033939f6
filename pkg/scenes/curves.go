package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/render"
)

// tangentEvery controls how often torus tangents are drawn.
const tangentEvery = 6

// Coil draws a helix colored from Start to End.
type Coil struct {
	Params     geometry.CoilParams
	Start, End geometry.Color
}

// NewCoilFromConfig builds a coil scene from the coil.* keys.
func NewCoilFromConfig(cfg *config.Config) (Scene, error) {
	start, end, err := cfg.GetCurveColors()
	if err != nil {
		return nil, err
	}
	return &Coil{Params: cfg.GetCoil(), Start: start, End: end}, nil
}

// Name returns "coil".
func (c *Coil) Name() string { return "coil" }

// Build samples the coil and colors each segment along it.
func (c *Coil) Build() (*render.DrawList, error) {
	points := geometry.SampleCoil(c.Params)
	if len(points) == 0 {
		return nil, fmt.Errorf("build coil: %d turns x %d points: %w",
			c.Params.Turns, c.Params.PointsPerTurn, geometry.ErrDegenerateShape)
	}

	d := render.NewDrawList()
	d.Segments(geometry.ColorSegments(points, false, c.Start, c.End))
	d.Sphere(points[0], markerRadius, c.Start)
	d.Sphere(points[len(points)-1], markerRadius, c.End)
	return d, nil
}

// Torus draws a closed curve winding around a torus.
type Torus struct {
	Params     geometry.TorusParams
	Start, End geometry.Color
}

// NewTorusFromConfig builds a torus scene from the torus.* keys.
func NewTorusFromConfig(cfg *config.Config) (Scene, error) {
	start, end, err := cfg.GetCurveColors()
	if err != nil {
		return nil, err
	}
	return &Torus{Params: cfg.GetTorus(), Start: start, End: end}, nil
}

// Name returns "torus".
func (t *Torus) Name() string { return "torus" }

// Build samples the torus and colors each segment along it.
func (t *Torus) Build() (*render.DrawList, error) {
	samples := geometry.SampleTorus(t.Params)
	if len(samples) == 0 {
		return nil, fmt.Errorf("build torus: %d turns x %d points: %w",
			t.Params.Turns, t.Params.PointsPerTurn, geometry.ErrDegenerateShape)
	}

	d := render.NewDrawList()
	d.Disc(t.Params.Center, geometry.WorldBasis().Y, t.Params.Radius, geometry.Grey)
	d.Segments(geometry.ColorSegments(geometry.Positions(samples), true, t.Start, t.End))
	for i := 0; i < len(samples); i += tangentEvery {
		s := samples[i]
		d.Ray(s.CirclePoint, s.Tangent.Scale(t.Params.TubeHeight), geometry.Green)
		d.DottedLine(s.CirclePoint, s.Position, geometry.Grey)
	}
	return d, nil
}
