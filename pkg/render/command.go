package render

import (
	"math"

	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// Renderer receives draw commands. Every command carries its own color, so
// a backend never tracks a current color between calls.
type Renderer interface {
	DrawLine(Line)
	DrawSphere(Sphere)
	DrawArc(Arc)
	DrawLabel(Label)
}

// Command is a single draw call that can be replayed onto a Renderer.
type Command interface {
	Replay(Renderer)
}

// Line is a straight segment between two world points.
type Line struct {
	From, To math3d.Vec3
	Color    geometry.Color
	Dotted   bool
}

// Sphere is a marker sphere.
type Sphere struct {
	Center math3d.Vec3
	Radius float64
	Color  geometry.Color
}

// Arc sweeps Angle degrees from the From direction around Normal at the
// given Radius. Filled arcs are drawn as a solid wedge.
type Arc struct {
	Center math3d.Vec3
	Normal math3d.Vec3
	From   math3d.Vec3
	Angle  float64 // degrees
	Radius float64
	Color  geometry.Color
	Filled bool
}

// Label is text anchored at a world position.
type Label struct {
	Position math3d.Vec3
	Text     string
	Color    geometry.Color
}

// Replay draws the line on r.
func (l Line) Replay(r Renderer) { r.DrawLine(l) }
// Replay draws the sphere on r.
func (s Sphere) Replay(r Renderer) { r.DrawSphere(s) }
// Replay draws the arc on r.
func (a Arc) Replay(r Renderer) { r.DrawArc(a) }
// Replay draws the label on r.
func (l Label) Replay(r Renderer) { r.DrawLabel(l) }

// arcStep is the angular resolution used when flattening arcs, in degrees.
const arcStep = 6.0

// Points flattens the arc into a polyline, including both ends.
func (a Arc) Points() []math3d.Vec3 {
	from := a.From.Normalize().Scale(a.Radius)
	steps := max(1, int(math.Ceil(math.Abs(a.Angle)/arcStep)))
	pts := make([]math3d.Vec3, steps+1)
	for i := range steps + 1 {
		angle := a.Angle * float64(i) / float64(steps) * math.Pi / 180
		pts[i] = a.Center.Add(math3d.Rotate(a.Normal, angle).MulVec3Dir(from))
	}
	return pts
}

// Circle returns a full circle of radius r around normal.
func Circle(center, normal math3d.Vec3, r float64, c geometry.Color) Arc {
	return Arc{
		Center: center,
		Normal: normal,
		From:   perpendicular(normal),
		Angle:  360,
		Radius: r,
		Color:  c,
	}
}

// perpendicular returns some unit vector orthogonal to n.
func perpendicular(n math3d.Vec3) math3d.Vec3 {
	axis := math3d.Right()
	if math.Abs(n.Normalize().X) > 0.9 {
		axis = math3d.Up()
	}
	return n.Cross(axis).Normalize()
}

// DrawList is an ordered list of commands produced by one scene build.
type DrawList struct {
	Commands []Command
}

// NewDrawList creates an empty list.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Add appends raw commands.
func (d *DrawList) Add(cmds ...Command) {
	d.Commands = append(d.Commands, cmds...)
}

// Line appends a solid line.
func (d *DrawList) Line(from, to math3d.Vec3, c geometry.Color) {
	d.Add(Line{From: from, To: to, Color: c})
}

// DottedLine appends a dotted line.
func (d *DrawList) DottedLine(from, to math3d.Vec3, c geometry.Color) {
	d.Add(Line{From: from, To: to, Color: c, Dotted: true})
}

// Ray appends a line from origin along dir.
func (d *DrawList) Ray(origin, dir math3d.Vec3, c geometry.Color) {
	d.Line(origin, origin.Add(dir), c)
}

// Sphere appends a marker sphere.
func (d *DrawList) Sphere(center math3d.Vec3, r float64, c geometry.Color) {
	d.Add(Sphere{Center: center, Radius: r, Color: c})
}

// Arc appends an arc outline.
func (d *DrawList) Arc(center, normal, from math3d.Vec3, degrees, r float64, c geometry.Color) {
	d.Add(Arc{Center: center, Normal: normal, From: from, Angle: degrees, Radius: r, Color: c})
}

// SolidArc appends a filled wedge.
func (d *DrawList) SolidArc(center, normal, from math3d.Vec3, degrees, r float64, c geometry.Color) {
	d.Add(Arc{Center: center, Normal: normal, From: from, Angle: degrees, Radius: r, Color: c, Filled: true})
}

// Disc appends a circle outline.
func (d *DrawList) Disc(center, normal math3d.Vec3, r float64, c geometry.Color) {
	d.Add(Circle(center, normal, r, c))
}

// Label appends a text label.
func (d *DrawList) Label(pos math3d.Vec3, text string, c geometry.Color) {
	d.Add(Label{Position: pos, Text: text, Color: c})
}

// Segments appends one line per curve segment.
func (d *DrawList) Segments(segs []geometry.Segment) {
	for _, s := range segs {
		d.Line(s.From, s.To, s.Color)
	}
}

// Len returns the number of commands.
func (d *DrawList) Len() int {
	return len(d.Commands)
}

// Replay sends every command to r in order.
func (d *DrawList) Replay(r Renderer) {
	for _, c := range d.Commands {
		c.Replay(r)
	}
}

// Labels returns the label commands in order.
func (d *DrawList) Labels() []Label {
	var out []Label
	for _, c := range d.Commands {
		if l, ok := c.(Label); ok {
			out = append(out, l)
		}
	}
	return out
}

// Bounds returns the axis-aligned box around every point the list touches.
// ok is false for an empty list.
func (d *DrawList) Bounds() (lo, hi math3d.Vec3, ok bool) {
	grow := func(p math3d.Vec3) {
		if !ok {
			lo, hi, ok = p, p, true
			return
		}
		lo = math3d.V3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = math3d.V3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	for _, c := range d.Commands {
		switch c := c.(type) {
		case Line:
			grow(c.From)
			grow(c.To)
		case Sphere:
			r := math3d.V3(c.Radius, c.Radius, c.Radius)
			grow(c.Center.Sub(r))
			grow(c.Center.Add(r))
		case Arc:
			for _, p := range c.Points() {
				grow(p)
			}
		case Label:
			grow(c.Position)
		}
	}
	return lo, hi, ok
}

// Dashes splits a screen-space segment into alternating on and off runs
// of length n and returns the "on" runs as x0, y0, x1, y1.
func Dashes(x0, y0, x1, y1, n float64) [][4]float64 {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || n <= 0 {
		return nil
	}
	dx, dy := (x1-x0)/length, (y1-y0)/length

	var out [][4]float64
	for s := 0.0; s < length; s += 2 * n {
		e := math.Min(s+n, length)
		out = append(out, [4]float64{x0 + dx*s, y0 + dy*s, x0 + dx*e, y0 + dy*e})
	}
	return out
}
