// Package window shows a draw list in a desktop window.
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/logger"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

const (
	lineWidth  = 1.5
	dashLength = 6.0
	orbitSpeed = 0.03
)

// Viewer is an ebiten game that replays one draw list every frame.
type Viewer struct {
	cfg    *config.Config
	logger logger.Logger
	list   *render.DrawList
	camera *render.Camera

	background color.RGBA
	yaw, pitch float64
	target     math3d.Vec3
	distance   float64

	screen        *ebiten.Image
	width, height int
}

var (
	_ ebiten.Game     = (*Viewer)(nil)
	_ render.Renderer = (*Viewer)(nil)
)

// NewViewer frames the draw list and prepares the window settings.
func NewViewer(cfg *config.Config, log logger.Logger, list *render.DrawList) (*Viewer, error) {
	bg, err := cfg.GetBackground()
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		cfg:        cfg,
		logger:     log,
		list:       list,
		camera:     render.NewCamera(),
		background: render.ToRGBA(bg),
		yaw:        0.6,
		pitch:      0.4,
		distance:   6,
		width:      cfg.GetWindowWidth(),
		height:     cfg.GetWindowHeight(),
	}
	if lo, hi, ok := list.Bounds(); ok {
		v.target = lo.Add(hi).Scale(0.5)
		v.distance = math.Max(hi.Sub(lo).Len()/2, 0.5) / math.Sin(v.camera.FOV/2)
	}
	return v, nil
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	v.logger.Info("opening window", "width", v.width, "height", v.height, "commands", v.list.Len())
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(v.cfg.GetFPS())
	return ebiten.RunGame(v)
}

// Update handles orbit, zoom and quit input.
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		v.yaw -= orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		v.yaw += orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		v.pitch += orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		v.pitch -= orbitSpeed
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.distance = math.Max(0.5, v.distance*math.Pow(0.9, dy))
	}
	return nil
}

// Draw replays the draw list onto screen.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.background)
	v.camera.SetAspectRatio(float64(v.width) / float64(v.height))
	v.camera.Orbit(v.target, v.distance, v.yaw, v.pitch)

	v.screen = screen
	v.list.Replay(v)
	v.screen = nil
}

// Layout tracks the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return v.width, v.height
}

// DrawLine strokes a projected segment, in dashes when dotted.
func (v *Viewer) DrawLine(l render.Line) {
	x0, y0, ok0 := v.camera.Project(l.From, v.width, v.height)
	x1, y1, ok1 := v.camera.Project(l.To, v.width, v.height)
	if !ok0 || !ok1 {
		return
	}
	c := render.ToRGBA(l.Color)
	if !l.Dotted {
		vector.StrokeLine(v.screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, c, true)
		return
	}
	for _, dash := range render.Dashes(x0, y0, x1, y1, dashLength) {
		vector.StrokeLine(v.screen, float32(dash[0]), float32(dash[1]), float32(dash[2]), float32(dash[3]), lineWidth, c, true)
	}
}

// DrawSphere fills a disc of the sphere's projected radius.
func (v *Viewer) DrawSphere(s render.Sphere) {
	cx, cy, ok := v.camera.Project(s.Center, v.width, v.height)
	if !ok {
		return
	}
	ex, ey, ok := v.camera.Project(s.Center.Add(v.camera.Right().Scale(s.Radius)), v.width, v.height)
	if !ok {
		return
	}
	r := math.Max(math.Hypot(ex-cx, ey-cy), 1)
	vector.DrawFilledCircle(v.screen, float32(cx), float32(cy), float32(r), render.ToRGBA(s.Color), true)
}

// DrawArc strokes the arc polyline; filled arcs are drawn as a fan of
// strokes from the center.
func (v *Viewer) DrawArc(a render.Arc) {
	pts := a.Points()
	for i := 1; i < len(pts); i++ {
		v.DrawLine(render.Line{From: pts[i-1], To: pts[i], Color: a.Color})
		if a.Filled {
			v.DrawLine(render.Line{From: a.Center, To: pts[i], Color: a.Color})
		}
	}
}

// DrawLabel prints the text at the projected anchor. The debug font has a
// fixed color.
func (v *Viewer) DrawLabel(l render.Label) {
	x, y, ok := v.camera.WorldToScreen(l.Position, v.width, v.height)
	if !ok {
		return
	}
	ebitenutil.DebugPrintAt(v.screen, l.Text, int(x), int(y))
}
