package geometry

import (
	"math"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// MinSides is the smallest vertex count a polygon is clamped to.
const MinSides = 3

// Polygon describes a regular polygon or star polygon. Density is the
// vertex stride used when connecting points; density 1 is the plain
// polygon, 2 on five sides is a pentagram.
type Polygon struct {
	Sides   int
	Radius  float64
	Density int
	Center  math3d.Vec2
}

// NewPolygon clamps its inputs the way the editor validates them: fewer
// than three sides becomes three and a negative radius becomes zero.
func NewPolygon(sides int, radius float64, density int, center math3d.Vec2) Polygon {
	return Polygon{
		Sides:   max(sides, MinSides),
		Radius:  max(radius, 0),
		Density: density,
		Center:  center,
	}
}

// Edge joins two vertex indices.
type Edge struct {
	From, To int
}

// RegularPolygonVertices places sides points evenly on a circle, the first
// at angle zero and the rest counter-clockwise at 2π·i/sides.
func RegularPolygonVertices(sides int, radius float64, center math3d.Vec2) []math3d.Vec2 {
	if sides <= 0 {
		return nil
	}
	points := make([]math3d.Vec2, sides)
	for i := range sides {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = math3d.V2(
			center.X+radius*math.Cos(angle),
			center.Y+radius*math.Sin(angle),
		)
	}
	return points
}

// Connectivity returns one edge per vertex, from i to (i+density) mod sides.
func Connectivity(density, sides int) []Edge {
	if sides <= 0 {
		return nil
	}
	edges := make([]Edge, sides)
	for i := range sides {
		edges[i] = Edge{From: i, To: wrap(i+density, sides)}
	}
	return edges
}

// StepsIn folds a density into the equivalent stride no larger than half
// the side count; {5/3} draws the same star as {5/2}.
func StepsIn(density, sides int) int {
	d := wrap(density, sides)
	if d > sides/2 {
		return sides - d
	}
	return d
}

// FanTriangle is one triangle of the fan from vertex 0, split into two
// right triangles by dropping a perpendicular onto the fan edge.
type FanTriangle struct {
	First      math3d.Vec2 // vertex 0, shared by every fan triangle
	Connecting math3d.Vec2 // far end of the fan edge
	Apex       math3d.Vec2 // vertex the perpendicular is dropped from
	Foot       math3d.Vec2 // where the perpendicular meets the fan edge

	Base1, Base2 float64 // fan edge split at Foot; Base1 may be negative
	Height       float64
	Area         float64
}

// Decomposition is the full working of a polygon area computation.
type Decomposition struct {
	Polygon  Polygon
	Vertices []math3d.Vec2
	Edges    []Edge

	// Degenerate is set when density is a multiple of the side count and
	// every edge collapses to a point. Area is zero in that case.
	Degenerate bool

	Fan     []FanTriangle
	FanArea float64

	StepsIn     int
	CutoutAngle float64 // radians, base angle of each outer cutout triangle
	CutoutArea  float64 // area of a single cutout triangle
	Cutouts     int     // number of cutouts subtracted

	Area float64
}

// Decompose computes the area of p by fanning triangles out from vertex 0
// and subtracting the isosceles cutouts between the star's points.
//
// The cutout base angle follows (k-1)/(2k)·k·(2π/n) for k steps in, which
// reduces to (k-1)π/n. (Sides-1) cutouts are subtracted; the outline traced
// by StarOutline and ShoelaceArea removes one more.
func Decompose(p Polygon) Decomposition {
	n := p.Sides
	points := RegularPolygonVertices(n, p.Radius, p.Center)
	dec := Decomposition{
		Polygon:  p,
		Vertices: points,
		Edges:    Connectivity(p.Density, n),
	}
	if n < MinSides {
		dec.Degenerate = true
		return dec
	}
	if wrap(p.Density, n) == 0 {
		dec.Degenerate = true
		return dec
	}

	first := points[0]
	half := float64(n) / 2
	for i := 1; i < n-1; i++ {
		apex, connecting := points[i], points[i+1]
		if float64(i) >= half {
			apex, connecting = connecting, apex
		}
		tri := splitFanTriangle(first, connecting, apex)
		dec.Fan = append(dec.Fan, tri)
		dec.FanArea += tri.Area
	}

	dec.StepsIn = StepsIn(p.Density, n)
	if dec.StepsIn > 0 {
		k := float64(dec.StepsIn)
		between := 2 * math.Pi / float64(n)
		dec.CutoutAngle = (k - 1) / (2 * k) * k * between

		edge := points[0].Sub(points[1]).Len()
		height := math.Tan(dec.CutoutAngle) * edge / 2
		dec.CutoutArea = edge * height / 2
		dec.Cutouts = n - 1
	}

	dec.Area = dec.FanArea - dec.CutoutArea*float64(dec.Cutouts)
	return dec
}

func splitFanTriangle(first, connecting, apex math3d.Vec2) FanTriangle {
	longest := first.Sub(connecting)
	adjacent := connecting.Sub(apex)

	base1 := longest.Normalize().Dot(adjacent)
	base2 := longest.Len() - base1

	toFirst := connecting.Sub(first).Normalize()
	foot := connecting.Add(toFirst.Scale(base1))
	height := foot.Sub(apex).Len()

	return FanTriangle{
		First:      first,
		Connecting: connecting,
		Apex:       apex,
		Foot:       foot,
		Base1:      base1,
		Base2:      base2,
		Height:     height,
		Area:       base1*height/2 + base2*height/2,
	}
}

// StarOutline returns the boundary of the filled star: each tip followed by
// the inner vertex where the neighbouring edges cross. For density 1 the
// inner vertices sit on the edge midpoints. A collapsed density yields nil.
func StarOutline(p Polygon) []math3d.Vec2 {
	n := p.Sides
	k := StepsIn(p.Density, n)
	if n < MinSides || k == 0 {
		return nil
	}

	inner := p.Radius * math.Cos(math.Pi*float64(k)/float64(n)) /
		math.Cos(math.Pi*float64(k-1)/float64(n))

	tips := RegularPolygonVertices(n, p.Radius, p.Center)
	outline := make([]math3d.Vec2, 0, 2*n)
	for i, tip := range tips {
		angle := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		outline = append(outline, tip, math3d.V2(
			p.Center.X+inner*math.Cos(angle),
			p.Center.Y+inner*math.Sin(angle),
		))
	}
	return outline
}

// ShoelaceArea returns the absolute area enclosed by a simple polygon.
func ShoelaceArea(points []math3d.Vec2) float64 {
	var sum float64
	for i, a := range points {
		b := points[(i+1)%len(points)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// wrap is a modulo that stays non-negative for negative strides.
func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
