package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// markerRadius is the size of point markers.
const markerRadius = 0.05

// cubeEdges indexes the 12 edges of the corners produced by boxCorners.
var cubeEdges = [12][2]int{
	// Back face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// boxCorners returns the 8 corners of a box with the given half extents in
// local coordinates of b, bottom face first.
func boxCorners(b geometry.Basis, half math3d.Vec3) [8]math3d.Vec3 {
	var corners [8]math3d.Vec3
	signs := [8][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	for i, s := range signs {
		local := math3d.V3(s[0]*half.X, s[1]*half.Y, s[2]*half.Z)
		corners[i] = geometry.LocalToWorld3(b, local)
	}
	return corners
}

// wireBox draws a box around b.Origin aligned to b's axes.
func wireBox(d *render.DrawList, b geometry.Basis, half math3d.Vec3, c geometry.Color) {
	corners := boxCorners(b, half)
	for _, e := range cubeEdges {
		d.Line(corners[e[0]], corners[e[1]], c)
	}
}

// axes draws the three axes of b with unit length scaled by size.
func axes(d *render.DrawList, b geometry.Basis, size float64) {
	d.Ray(b.Origin, b.X.Scale(size), geometry.Red)
	d.Ray(b.Origin, b.Y.Scale(size), geometry.Green)
	d.Ray(b.Origin, b.Z.Scale(size), geometry.Blue)
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
