package math3d

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", Right(), Up(), V3(0, 0, 1)},
		{"y cross z", Up(), V3(0, 0, 1), Right()},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("%v × %v = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := Zero3().Normalize(); got != Zero3() {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
	if l := V3(3, 4, 0).Normalize().Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", l)
	}
}

func TestVec2(t *testing.T) {
	a := V2(3, 4)
	if a.Len() != 5 {
		t.Errorf("Len = %v, want 5", a.Len())
	}
	if d := a.Dot(V2(1, 0)); d != 3 {
		t.Errorf("Dot = %v, want 3", d)
	}
	if v := a.Vec3(); v != V3(3, 4, 0) {
		t.Errorf("Vec3 = %v", v)
	}
}

func TestRotateAxis(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"z quarter turn", V3(0, 0, 1), math.Pi / 2, Right(), Up()},
		{"y quarter turn", Up(), math.Pi / 2, V3(0, 0, 1), Right()},
		{"x half turn", Right(), math.Pi, Up(), Down()},
		{"zero axis is identity", Zero3(), 1, V3(1, 2, 3), V3(1, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.axis, tc.angle).MulVec3Dir(tc.in)
			if !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFromColumns(t *testing.T) {
	m := FromColumns(Up(), Right().Negate(), V3(0, 0, 1), V3(10, 0, 0))

	got := m.MulVec3(V3(1, 1, 0))
	want := V3(9, 1, 0)
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("MulVec3 = %v, want %v", got, want)
	}
	if m.Translation() != V3(10, 0, 0) {
		t.Errorf("Translation = %v", m.Translation())
	}
}

func TestMat4MulTranslate(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(Translate(V3(-1, 0, 1)))
	if got := m.MulVec3(Zero3()); got != V3(0, 2, 4) {
		t.Errorf("composed translation = %v, want (0, 2, 4)", got)
	}
	if got := m.MulVec3Dir(Right()); got != Right() {
		t.Errorf("direction should ignore translation, got %v", got)
	}
}
