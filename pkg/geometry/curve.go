package geometry

import (
	"math"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// CoilParams describes a helix around the vertical axis through Center.
type CoilParams struct {
	Center        math3d.Vec3
	Turns         int
	Height        float64
	Radius        float64
	PointsPerTurn int
}

// SampleCoil returns Turns·PointsPerTurn points of a helix. Point i sits at
// angle 2π·(i mod PointsPerTurn)/PointsPerTurn in the XZ plane and climbs
// Height/N per point starting from Center.Y - Height/2. The last point
// stops one step short of the top, at Center.Y + Height/2 - Height/N.
func SampleCoil(p CoilParams) []math3d.Vec3 {
	total := p.Turns * p.PointsPerTurn
	if total <= 0 {
		return nil
	}
	rise := p.Height / float64(total)
	bottom := p.Center.Y - p.Height/2

	points := make([]math3d.Vec3, total)
	for i := range total {
		angle := float64(i%p.PointsPerTurn) / float64(p.PointsPerTurn) * 2 * math.Pi
		points[i] = math3d.V3(
			p.Center.X+math.Cos(angle)*p.Radius,
			bottom+float64(i)*rise,
			p.Center.Z+math.Sin(angle)*p.Radius,
		)
	}
	return points
}

// TorusParams describes a curve winding Turns times around a tube.
type TorusParams struct {
	Center        math3d.Vec3
	Turns         int
	Radius        float64 // distance from Center to the middle of the tube
	TubeHeight    float64 // tube diameter
	PointsPerTurn int
}

// TorusPoint is a sampled torus point together with the frame it was
// built from, so renderers can show the tangent axis.
type TorusPoint struct {
	Position    math3d.Vec3
	CirclePoint math3d.Vec3 // point on the main circle
	Tangent     math3d.Vec3 // unit rotation axis at CirclePoint
	CurlAngle   float64     // radians
}

// SampleTorus sweeps once around the main circle while curling
// Turns times around the tube. At each step the world up vector, scaled to
// the tube radius, is rotated around the circle's tangent by the curl angle
// and offset from the circle point.
func SampleTorus(p TorusParams) []TorusPoint {
	total := p.Turns * p.PointsPerTurn
	if total <= 0 {
		return nil
	}
	tube := p.TubeHeight / 2
	up := math3d.Up()

	points := make([]TorusPoint, total)
	for i := range total {
		outer := float64(i) / float64(total) * 2 * math.Pi
		circle := math3d.V3(
			p.Center.X+math.Cos(outer)*p.Radius,
			p.Center.Y,
			p.Center.Z+math.Sin(outer)*p.Radius,
		)
		curl := float64(i%p.PointsPerTurn) / float64(p.PointsPerTurn) * 2 * math.Pi
		tangent := up.Cross(circle.Sub(p.Center)).Normalize()
		offset := math3d.Rotate(tangent, curl).MulVec3Dir(up.Scale(tube))

		points[i] = TorusPoint{
			Position:    circle.Add(offset),
			CirclePoint: circle,
			Tangent:     tangent,
			CurlAngle:   curl,
		}
	}
	return points
}

// Positions strips the frame data from torus samples.
func Positions(samples []TorusPoint) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(samples))
	for i, s := range samples {
		out[i] = s.Position
	}
	return out
}

// Segment is one colored piece of a sampled curve.
type Segment struct {
	From, To math3d.Vec3
	Color    Color
}

// ColorSegments joins consecutive points into segments whose color runs
// from start to end with t = i/len(points). A closed curve gains a final
// segment back to the first point.
func ColorSegments(points []math3d.Vec3, closed bool, start, end Color) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	count := n - 1
	if closed {
		count = n
	}
	segs := make([]Segment, count)
	for i := range count {
		segs[i] = Segment{
			From:  points[i],
			To:    points[(i+1)%n],
			Color: LerpColor(start, end, float64(i)/float64(n)),
		}
	}
	return segs
}
