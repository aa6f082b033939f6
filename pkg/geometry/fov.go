package geometry

import (
	"math"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// Sphere is a bounding sphere to keep in view.
type Sphere struct {
	Center math3d.Vec3
	Radius float64
}

// FieldOfView is the result of AdaptiveFOV.
type FieldOfView struct {
	// Angle is the full cone angle in radians.
	Angle float64
	// Widest is the sphere edge point that set the angle.
	Widest math3d.Vec3
	// Adjacent is the distance along the view direction to Widest.
	Adjacent float64
	// Edges holds the outermost point found for each sphere, in input order.
	Edges []math3d.Vec3
}

// AdaptiveFOV finds the narrowest view cone around camDir that still
// contains the far edge of every sphere in front of the camera. For each
// sphere the edge point is its center pushed outwards by its radius,
// perpendicular to the line of sight. Spheres behind or exactly beside the
// camera cannot be brought into view and are ignored; ok is false when no
// sphere qualifies.
func AdaptiveFOV(camPos, camDir math3d.Vec3, spheres []Sphere) (fov FieldOfView, ok bool) {
	dir := camDir.Normalize()
	minDot := 1.0

	for _, s := range spheres {
		toCenter := s.Center.Sub(camPos)
		sight := toCenter.Normalize()
		side := sight.Cross(dir)
		inward := side.Cross(sight).Normalize()

		edge := s.Center.Sub(inward.Scale(s.Radius))
		fov.Edges = append(fov.Edges, edge)

		dot := edge.Sub(camPos).Normalize().Dot(dir)
		if dot > 0 && (!ok || dot < minDot) {
			fov.Widest = edge
			minDot = dot
			ok = true
		}
	}
	if !ok {
		return fov, false
	}

	toWidest := fov.Widest.Sub(camPos)
	hyp := toWidest.Len()
	fov.Adjacent = toWidest.Dot(dir)
	fov.Angle = 2 * math.Acos(clamp(fov.Adjacent/hyp, -1, 1))
	return fov, true
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
