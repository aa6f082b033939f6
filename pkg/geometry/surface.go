package geometry

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// SurfaceBasis builds the frame for placing an object on a surface hit by
// a ray from `from`: Y is the surface normal, X the tangent perpendicular to
// both the ray and the normal, and Z the ray direction flattened onto the
// surface.
func SurfaceBasis(from, hit, normal math3d.Vec3) (Basis, error) {
	n, err := Unit(normal)
	if err != nil {
		return Basis{}, fmt.Errorf("surface basis: normal: %w", err)
	}
	dir, err := Unit(hit.Sub(from))
	if err != nil {
		return Basis{}, fmt.Errorf("surface basis: ray: %w", err)
	}
	tangent, err := Unit(dir.Cross(n))
	if err != nil {
		return Basis{}, fmt.Errorf("surface basis: ray along normal: %w", err)
	}
	forward := n.Cross(tangent).Normalize()

	return Basis{
		Origin: hit,
		X:      tangent,
		Y:      n,
		Z:      forward,
	}, nil
}
