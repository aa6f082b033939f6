package render

import (
	"image/color"
	"math"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// ScreenLabel is a label projected to framebuffer pixel coordinates.
type ScreenLabel struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// Gizmos rasterizes draw commands through a camera onto a framebuffer.
type Gizmos struct {
	camera *Camera
	fb     *Framebuffer
	labels []ScreenLabel
}

var _ Renderer = (*Gizmos)(nil)

// NewGizmos creates a gizmo renderer.
func NewGizmos(camera *Camera, fb *Framebuffer) *Gizmos {
	return &Gizmos{
		camera: camera,
		fb:     fb,
	}
}

// Begin clears the framebuffer and any labels from the previous frame.
func (g *Gizmos) Begin(background color.RGBA) {
	g.fb.Clear(background)
	g.labels = g.labels[:0]
}

// Labels returns the labels projected during the current frame.
func (g *Gizmos) Labels() []ScreenLabel {
	return g.labels
}

// DrawLine projects both endpoints and draws the clipped segment.
func (g *Gizmos) DrawLine(l Line) {
	g.segment(l.From, l.To, l.Dotted, ToRGBA(l.Color))
}

// DrawSphere draws a marker sphere as three great circles.
func (g *Gizmos) DrawSphere(s Sphere) {
	for _, n := range []math3d.Vec3{math3d.Right(), math3d.Up(), math3d.Forward()} {
		g.DrawArc(Circle(s.Center, n, s.Radius, s.Color))
	}
}

// DrawArc draws an arc outline, or a filled wedge when Filled is set.
func (g *Gizmos) DrawArc(a Arc) {
	c := ToRGBA(a.Color)
	pts := a.Points()
	if !a.Filled {
		for i := 1; i < len(pts); i++ {
			g.segment(pts[i-1], pts[i], false, c)
		}
		return
	}

	cx, cy, ok := g.camera.Project(a.Center, g.fb.Width, g.fb.Height)
	if !ok {
		return
	}
	for i := 1; i < len(pts); i++ {
		x0, y0, ok0 := g.camera.Project(pts[i-1], g.fb.Width, g.fb.Height)
		x1, y1, ok1 := g.camera.Project(pts[i], g.fb.Width, g.fb.Height)
		if ok0 && ok1 {
			g.fb.FillTriangle(cx, cy, x0, y0, x1, y1, c)
		}
	}
}

// DrawLabel records the label at its projected anchor.
func (g *Gizmos) DrawLabel(l Label) {
	x, y, ok := g.camera.WorldToScreen(l.Position, g.fb.Width, g.fb.Height)
	if !ok {
		return
	}
	g.labels = append(g.labels, ScreenLabel{
		X:     int(math.Round(x)),
		Y:     int(math.Round(y)),
		Text:  l.Text,
		Color: ToRGBA(l.Color),
	})
}

func (g *Gizmos) segment(p1, p2 math3d.Vec3, dotted bool, c color.RGBA) {
	x1, y1, vis1 := g.camera.Project(p1, g.fb.Width, g.fb.Height)
	x2, y2, vis2 := g.camera.Project(p2, g.fb.Width, g.fb.Height)
	if !vis1 || !vis2 {
		return
	}
	g.fb.DrawSegment(x1, y1, x2, y2, dotted, c)
}
