package geometry

import "github.com/taigrr/gizmo/pkg/math3d"

// Basis is a local coordinate frame. Axes are expected to be orthonormal;
// that is the caller's contract and is not re-checked here.
type Basis struct {
	Origin math3d.Vec3
	X      math3d.Vec3
	Y      math3d.Vec3
	Z      math3d.Vec3
}

// WorldBasis is the identity frame at the world origin.
func WorldBasis() Basis {
	return Basis{
		X: math3d.Right(),
		Y: math3d.Up(),
		Z: math3d.Forward(),
	}
}

// PlanarBasis builds a frame from an origin and its right and up axes. The
// third axis is completed with right × up.
func PlanarBasis(origin, right, up math3d.Vec3) Basis {
	return Basis{
		Origin: origin,
		X:      right,
		Y:      up,
		Z:      right.Cross(up),
	}
}

// RotatedBasis returns the world frame rotated by angle radians around
// axis and moved to origin.
func RotatedBasis(origin, axis math3d.Vec3, angle float64) Basis {
	rot := math3d.Rotate(axis, angle)
	return Basis{
		Origin: origin,
		X:      rot.MulVec3Dir(math3d.Right()),
		Y:      rot.MulVec3Dir(math3d.Up()),
		Z:      rot.MulVec3Dir(math3d.Forward()),
	}
}

// WorldToLocal projects p onto the frame's X and Y axes.
func WorldToLocal(b Basis, p math3d.Vec3) (x, y float64) {
	offset := p.Sub(b.Origin)
	return offset.Dot(b.X), offset.Dot(b.Y)
}

// LocalToWorld rebuilds a world point from planar local coordinates.
func LocalToWorld(b Basis, x, y float64) math3d.Vec3 {
	return b.Origin.Add(b.X.Scale(x)).Add(b.Y.Scale(y))
}

// WorldToLocal3 projects p onto all three axes of the frame.
func WorldToLocal3(b Basis, p math3d.Vec3) math3d.Vec3 {
	offset := p.Sub(b.Origin)
	return math3d.V3(offset.Dot(b.X), offset.Dot(b.Y), offset.Dot(b.Z))
}

// LocalToWorld3 rebuilds a world point from full local coordinates.
func LocalToWorld3(b Basis, local math3d.Vec3) math3d.Vec3 {
	return b.Origin.
		Add(b.X.Scale(local.X)).
		Add(b.Y.Scale(local.Y)).
		Add(b.Z.Scale(local.Z))
}

// Matrix returns the local-to-world transform of the frame.
func (b Basis) Matrix() math3d.Mat4 {
	return math3d.FromColumns(b.X, b.Y, b.Z, b.Origin)
}
