package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/gizmo/pkg/math3d"
)

func TestTriangleArea(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want float64
	}{
		{"unit right triangle", Triangle{math3d.Zero3(), math3d.Right(), math3d.Up()}, 0.5},
		{"scaled", Triangle{math3d.Zero3(), math3d.V3(4, 0, 0), math3d.V3(0, 0, 3)}, 6},
		{"collinear", Triangle{math3d.Zero3(), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2)}, 0},
		{"coincident", Triangle{math3d.Up(), math3d.Up(), math3d.Up()}, 0},
		{"off origin", Triangle{math3d.V3(1, 1, 1), math3d.V3(3, 1, 1), math3d.V3(1, 1, 5)}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.tri.Area(), 1e-12)
		})
	}
}

func TestMeshSurfaceArea(t *testing.T) {
	assert.Equal(t, 0.0, MeshSurfaceArea(nil))

	unit := []Triangle{{math3d.Zero3(), math3d.Right(), math3d.Up()}}
	assert.InDelta(t, 0.5, MeshSurfaceArea(unit), 1e-12)

	// Unit cube: six faces of two triangles each.
	cube := cubeTriangles()
	assert.Len(t, cube, 12)
	assert.InDelta(t, 6, MeshSurfaceArea(cube), 1e-12)
}

func TestMeasureMesh(t *testing.T) {
	empty := MeasureMesh(nil)
	assert.True(t, empty.Degenerate())
	assert.Zero(t, empty.Area)

	flat := MeasureMesh([]Triangle{{math3d.Zero3(), math3d.Right(), math3d.Right().Scale(2)}})
	assert.True(t, flat.Degenerate())
	assert.Equal(t, 1, flat.Collapsed)

	mixed := MeasureMesh(append(cubeTriangles(), Triangle{}))
	assert.False(t, mixed.Degenerate())
	assert.Equal(t, 13, mixed.Triangles)
	assert.Equal(t, 1, mixed.Collapsed)
	assert.InDelta(t, 6, mixed.Area, 1e-12)
}

func TestTriangleNormalAndCentroid(t *testing.T) {
	tri := Triangle{math3d.Zero3(), math3d.Right(), math3d.Up()}
	assert.Equal(t, math3d.V3(0, 0, 1), tri.Normal())
	assert.True(t, tri.Centroid().ApproxEqual(math3d.V3(1.0/3, 1.0/3, 0), 1e-12))
	assert.Equal(t, math3d.Zero3(), Triangle{}.Normal())
}

func cubeTriangles() []Triangle {
	v := func(x, y, z float64) math3d.Vec3 { return math3d.V3(x, y, z) }
	quads := [][4]math3d.Vec3{
		{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)},
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)},
		{v(0, 0, 0), v(0, 1, 0), v(0, 1, 1), v(0, 0, 1)},
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)},
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)},
		{v(0, 1, 0), v(1, 1, 0), v(1, 1, 1), v(0, 1, 1)},
	}
	var tris []Triangle
	for _, q := range quads {
		tris = append(tris, Triangle{q[0], q[1], q[2]}, Triangle{q[0], q[2], q[3]})
	}
	return tris
}
