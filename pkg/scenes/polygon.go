package scenes

import (
	"fmt"
	"math"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// Polygon draws a regular polygon or star with the fan and cutouts used to
// compute its area.
type Polygon struct {
	Polygon geometry.Polygon
}

// NewPolygonFromConfig builds a polygon scene from the polygon.* keys.
func NewPolygonFromConfig(cfg *config.Config) (Scene, error) {
	return &Polygon{Polygon: cfg.GetPolygon()}, nil
}

// Name returns "polygon".
func (p *Polygon) Name() string { return "polygon" }

// Build draws the polygon, its area fan and the cutout wedges.
func (p *Polygon) Build() (*render.DrawList, error) {
	dec := geometry.Decompose(p.Polygon)
	d := render.NewDrawList()
	center := p.Polygon.Center.Vec3()

	for _, v := range dec.Vertices {
		d.Sphere(v.Vec3(), markerRadius, geometry.White)
	}
	for _, e := range dec.Edges {
		d.Line(dec.Vertices[e.From].Vec3(), dec.Vertices[e.To].Vec3(), geometry.Yellow)
	}

	if dec.Degenerate {
		d.Label(center, fmt.Sprintf("density %d collapses %d sides", p.Polygon.Density, p.Polygon.Sides), geometry.Red)
		return d, nil
	}

	for _, tri := range dec.Fan {
		d.Line(tri.First.Vec3(), tri.Connecting.Vec3(), geometry.Cyan)
		d.DottedLine(tri.Apex.Vec3(), tri.Foot.Vec3(), geometry.Grey)
		d.Sphere(tri.Foot.Vec3(), markerRadius*0.6, geometry.Cyan)
	}

	// Cutout angle at each vertex, opening from the edge to the next vertex.
	n := len(dec.Vertices)
	degrees := dec.CutoutAngle * 180 / math.Pi
	for i, v := range dec.Vertices {
		edge := dec.Vertices[(i+1)%n].Sub(v)
		d.SolidArc(v.Vec3(), math3d.Forward(), edge.Vec3(), degrees, edge.Len()*0.3, geometry.White)
		d.Label(v.Vec3().Add(math3d.V3(0, -p.Polygon.Radius/10, 0)), fmt.Sprintf("%.1f°", degrees), geometry.White)
	}

	outline := geometry.StarOutline(p.Polygon)
	for i, v := range outline {
		if i%2 == 1 {
			d.Sphere(v.Vec3(), markerRadius*0.6, geometry.Magenta)
		}
	}

	d.Label(center, fmt.Sprintf("area %.4f", dec.Area), geometry.White)
	d.Label(center.Add(math3d.V3(0, -0.2, 0)), fmt.Sprintf("fan %.4f - %d x %.4f", dec.FanArea, dec.Cutouts, dec.CutoutArea), geometry.Grey)
	return d, nil
}
