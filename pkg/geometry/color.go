package geometry

// Color is a linear RGBA color with components nominally in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Named colors used by the exercises.
var (
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Cyan    = Color{0, 1, 1, 1}
	Magenta = Color{1, 0, 1, 1}
	Yellow  = Color{1, 0.92, 0.016, 1}
	White   = Color{1, 1, 1, 1}
	Grey    = Color{0.5, 0.5, 0.5, 1}
)

// LerpColor interpolates componentwise from start to end. t is clamped to
// [0, 1] so the endpoints are reproduced exactly.
func LerpColor(start, end Color, t float64) Color {
	switch {
	case t <= 0:
		return start
	case t >= 1:
		return end
	}
	return Color{
		R: start.R + (end.R-start.R)*t,
		G: start.G + (end.G-start.G)*t,
		B: start.B + (end.B-start.B)*t,
		A: start.A + (end.A-start.A)*t,
	}
}
