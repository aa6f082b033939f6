package models

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// defaultCells is the marching cubes resolution along the longest axis.
const defaultCells = 24

// Box tessellates an axis-aligned cube of the given edge length centered on
// the origin.
func Box(size float64, cells int) (*Mesh, error) {
	if size <= 0 {
		return nil, fmt.Errorf("box size %v: %w", size, geometry.ErrInvalidGeometry)
	}
	s, err := sdf.Box3D(v3.Vec{X: size, Y: size, Z: size}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdf box: %w", err)
	}
	return tessellate("box", s, cells), nil
}

// Sphere tessellates a sphere centered on the origin.
func Sphere(radius float64, cells int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %v: %w", radius, geometry.ErrInvalidGeometry)
	}
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sdf sphere: %w", err)
	}
	return tessellate("sphere", s, cells), nil
}

// Primitive builds a named primitive: "box" (size is the edge) or
// "sphere" (size is the diameter).
func Primitive(name string, size float64, cells int) (*Mesh, error) {
	switch name {
	case "box":
		return Box(size, cells)
	case "sphere":
		return Sphere(size/2, cells)
	default:
		return nil, fmt.Errorf("unknown primitive %q", name)
	}
}

func tessellate(name string, s sdf.SDF3, cells int) *Mesh {
	if cells <= 0 {
		cells = defaultCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	mesh := NewMesh(name)
	for _, tri := range triangles {
		mesh.AddTriangle(toVec3(tri[0]), toVec3(tri[1]), toVec3(tri[2]))
	}
	mesh.CalculateBounds()
	return mesh
}

func toVec3(v v3.Vec) math3d.Vec3 {
	return math3d.V3(v.X, v.Y, v.Z)
}
