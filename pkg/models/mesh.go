// Package models loads and generates triangle meshes for area measurement.
package models

import (
	"github.com/samber/lo"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     [][3]int // Indices into Positions

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddTriangle appends a triangle with its own three vertices.
func (m *Mesh) AddTriangle(a, b, c math3d.Vec3) {
	base := len(m.Positions)
	m.Positions = append(m.Positions, a, b, c)
	m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	low, high := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		low = math3d.V3(min(low.X, p.X), min(low.Y, p.Y), min(low.Z, p.Z))
		high = math3d.V3(max(high.X, p.X), max(high.Y, p.Y), max(high.Z, p.Z))
	}
	m.BoundsMin, m.BoundsMax = low, high
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Triangles resolves every face into a triangle by value.
func (m *Mesh) Triangles() []geometry.Triangle {
	return lo.Map(m.Faces, func(f [3]int, _ int) geometry.Triangle {
		return geometry.Triangle{
			A: m.Positions[f[0]],
			B: m.Positions[f[1]],
			C: m.Positions[f[2]],
		}
	})
}

// SurfaceArea sums the area of every face.
func (m *Mesh) SurfaceArea() float64 {
	return geometry.MeshSurfaceArea(m.Triangles())
}

// Metrics reports area and triangle counts.
func (m *Mesh) Metrics() geometry.MeshMetrics {
	return geometry.MeasureMesh(m.Triangles())
}

// Edges returns each undirected edge once, in first-seen order.
func (m *Mesh) Edges() [][2]int {
	var edges [][2]int
	for _, f := range m.Faces {
		for i := range 3 {
			a, b := f[i], f[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edges = append(edges, [2]int{a, b})
		}
	}
	return lo.Uniq(edges)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mat.MulVec3(m.Positions[i])
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales its largest dimension to
// size. It returns the scale applied, 1 for an empty or flat mesh.
func (m *Mesh) Fit(size float64) float64 {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim <= 0 {
		return 1
	}
	scale := size / maxDim
	center := m.Center()
	for i, p := range m.Positions {
		m.Positions[i] = p.Sub(center).Scale(scale)
	}
	m.CalculateBounds()
	return scale
}
