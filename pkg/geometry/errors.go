package geometry

import (
	"errors"

	"github.com/taigrr/gizmo/pkg/math3d"
)

var (
	// ErrInvalidGeometry is returned when a direction or normal has zero
	// length and no meaningful result exists.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDegenerateShape marks inputs that collapse to nothing drawable.
	// Area computations report it as a flag on their result; scenes return
	// it for curves with no samples.
	ErrDegenerateShape = errors.New("degenerate shape")
)

// Unit returns v scaled to length one. Unlike Vec3.Normalize it refuses the
// zero vector.
func Unit(v math3d.Vec3) (math3d.Vec3, error) {
	l := v.Len()
	if l == 0 {
		return math3d.Vec3{}, ErrInvalidGeometry
	}
	return v.Scale(1 / l), nil
}
