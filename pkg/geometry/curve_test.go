package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/gizmo/pkg/math3d"
)

func TestSampleCoilFlat(t *testing.T) {
	pts := SampleCoil(CoilParams{Turns: 1, Height: 0, Radius: 1, PointsPerTurn: 4})
	require.Len(t, pts, 4)

	want := []math3d.Vec3{
		math3d.V3(1, 0, 0),
		math3d.V3(0, 0, 1),
		math3d.V3(-1, 0, 0),
		math3d.V3(0, 0, -1),
	}
	for i, p := range pts {
		assert.True(t, p.ApproxEqual(want[i], 1e-12), "point %d = %v, want %v", i, p, want[i])
		assert.InDelta(t, 1, math.Hypot(p.X, p.Z), 1e-12)
	}
}

func TestSampleCoilHeight(t *testing.T) {
	p := CoilParams{
		Center:        math3d.V3(2, 10, -1),
		Turns:         3,
		Height:        12,
		Radius:        5,
		PointsPerTurn: 8,
	}
	pts := SampleCoil(p)
	require.Len(t, pts, 24)

	assert.InDelta(t, 4, pts[0].Y, 1e-12)
	assert.InDelta(t, 16-0.5, pts[len(pts)-1].Y, 1e-12)
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 0.5, pts[i].Y-pts[i-1].Y, 1e-12)
	}
	// Every turn restarts at angle zero.
	assert.InDelta(t, 7, pts[8].X, 1e-12)
	assert.InDelta(t, -1, pts[8].Z, 1e-12)
}

func TestSampleCoilEmpty(t *testing.T) {
	assert.Nil(t, SampleCoil(CoilParams{Turns: 0, PointsPerTurn: 10}))
	assert.Nil(t, SampleCoil(CoilParams{Turns: 2, PointsPerTurn: 0}))
}

func TestSampleTorus(t *testing.T) {
	p := TorusParams{
		Center:        math3d.V3(1, 2, 3),
		Turns:         4,
		Radius:        5,
		TubeHeight:    4,
		PointsPerTurn: 15,
	}
	samples := SampleTorus(p)
	require.Len(t, samples, 60)

	for i, s := range samples {
		// Circle points lie on the main circle in the center's XZ plane.
		assert.InDelta(t, 5, s.CirclePoint.Sub(p.Center).Len(), 1e-9, "circle point %d", i)
		assert.InDelta(t, p.Center.Y, s.CirclePoint.Y, 1e-12)

		// Each sample sits on the tube surface, perpendicular to the tangent.
		offset := s.Position.Sub(s.CirclePoint)
		assert.InDelta(t, 2, offset.Len(), 1e-9, "tube radius at %d", i)
		assert.InDelta(t, 0, offset.Dot(s.Tangent), 1e-9, "offset along tangent at %d", i)
	}

	// Zero curl leaves the point straight above the circle.
	assert.True(t, samples[0].Position.ApproxEqual(math3d.V3(6, 4, 3), 1e-9))
	assert.True(t, samples[15].Position.Sub(samples[15].CirclePoint).ApproxEqual(math3d.V3(0, 2, 0), 1e-9))
}

func TestSampleTorusHalfCurl(t *testing.T) {
	samples := SampleTorus(TorusParams{Turns: 1, Radius: 3, TubeHeight: 2, PointsPerTurn: 2})
	require.Len(t, samples, 2)

	// Second point is half way round the circle and half way round the tube.
	assert.True(t, samples[1].CirclePoint.ApproxEqual(math3d.V3(-3, 0, 0), 1e-9))
	assert.True(t, samples[1].Position.ApproxEqual(math3d.V3(-3, -1, 0), 1e-9))
	assert.Len(t, Positions(samples), 2)
}

func TestLerpColor(t *testing.T) {
	mid := LerpColor(Red, Cyan, 0.5)
	assert.Equal(t, Color{0.5, 0.5, 0.5, 1}, mid)

	assert.Equal(t, Red, LerpColor(Red, Cyan, 0))
	assert.Equal(t, Cyan, LerpColor(Red, Cyan, 1))
	assert.Equal(t, Red, LerpColor(Red, Cyan, -2))
	assert.Equal(t, Cyan, LerpColor(Red, Cyan, 7))

	q := LerpColor(Color{0, 0, 0, 0}, Color{1, 1, 1, 1}, 0.25)
	assert.InDelta(t, 0.25, q.A, 1e-12)
}

func TestColorSegments(t *testing.T) {
	pts := []math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(1, 1, 0), math3d.V3(0, 1, 0)}

	open := ColorSegments(pts, false, Red, Cyan)
	require.Len(t, open, 3)
	assert.Equal(t, Red, open[0].Color)
	assert.Equal(t, LerpColor(Red, Cyan, 0.5), open[2].Color)

	closed := ColorSegments(pts, true, Red, Cyan)
	require.Len(t, closed, 4)
	assert.Equal(t, pts[3], closed[3].From)
	assert.Equal(t, pts[0], closed[3].To)
	assert.Equal(t, LerpColor(Red, Cyan, 0.75), closed[3].Color)

	assert.Nil(t, ColorSegments(pts[:1], true, Red, Cyan))
}
