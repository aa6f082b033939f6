package geometry

import (
	"github.com/samber/lo"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// degenerateArea is the area under which a triangle is counted as collapsed.
const degenerateArea = 1e-12

// Triangle is three vertices in winding order.
type Triangle struct {
	A, B, C math3d.Vec3
}

// TriangleArea returns |(b-a) × (c-a)| / 2. Collinear points give zero.
func TriangleArea(a, b, c math3d.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

// Area returns the triangle's area.
func (t Triangle) Area() float64 {
	return TriangleArea(t.A, t.B, t.C)
}

// Normal returns the unit face normal, or the zero vector for a
// degenerate triangle.
func (t Triangle) Normal() math3d.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

// MeshSurfaceArea sums the area of every triangle. An empty mesh has zero
// area.
func MeshSurfaceArea(triangles []Triangle) float64 {
	return lo.SumBy(triangles, Triangle.Area)
}

// MeshMetrics summarizes a triangle soup.
type MeshMetrics struct {
	Area      float64
	Triangles int
	Collapsed int // triangles with (near) zero area
}

// Degenerate reports whether there is no surface to measure.
func (m MeshMetrics) Degenerate() bool {
	return m.Triangles == m.Collapsed
}

// MeasureMesh computes MeshMetrics for triangles.
func MeasureMesh(triangles []Triangle) MeshMetrics {
	m := MeshMetrics{Triangles: len(triangles)}
	for _, t := range triangles {
		a := t.Area()
		if a <= degenerateArea {
			m.Collapsed++
		}
		m.Area += a
	}
	return m
}
