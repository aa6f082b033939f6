package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

// Triggers shows a radial trigger and a look trigger side by side.
type Triggers struct {
	Center math3d.Vec3
	Radius float64
	Point  math3d.Vec3

	Viewer      math3d.Vec3
	Target      math3d.Vec3
	Trigger     math3d.Vec3
	Sensitivity float64
}

// NewTriggersFromConfig builds a triggers scene from the trigger.* keys.
func NewTriggersFromConfig(cfg *config.Config) (Scene, error) {
	return &Triggers{
		Center:      math3d.V3(-2, 0, 0),
		Radius:      cfg.GetTriggerRadius(),
		Point:       math3d.V3(-1.2, 0, 0.6),
		Viewer:      math3d.V3(3, 0, 2),
		Target:      math3d.V3(2, 0, 0),
		Trigger:     math3d.V3(2.4, 0, 1.1),
		Sensitivity: cfg.GetTriggerSensitivity(),
	}, nil
}

// Name returns "triggers".
func (t *Triggers) Name() string { return "triggers" }

// Build draws both triggers, colored by whether they fire.
func (t *Triggers) Build() (*render.DrawList, error) {
	d := render.NewDrawList()

	dist, inside := geometry.RadialTrigger(t.Center, t.Point, t.Radius)
	ring := geometry.Red
	if inside {
		ring = geometry.Green
	}
	d.Disc(t.Center, math3d.Up(), t.Radius, ring)
	d.Line(t.Center, t.Point, geometry.White)
	d.Sphere(t.Point, markerRadius, geometry.White)
	d.Label(t.Point, fmt.Sprintf("d=%.2f inside=%t", dist, inside), ring)

	dot, looking := geometry.LookTrigger(t.Viewer, t.Target, t.Trigger, t.Sensitivity)
	sight := geometry.Red
	if looking {
		sight = geometry.Green
	}
	d.Line(t.Target, t.Viewer, geometry.Grey)
	d.Line(t.Target, t.Trigger, sight)
	d.Sphere(t.Viewer, markerRadius, geometry.White)
	d.Sphere(t.Trigger, markerRadius, sight)
	d.Label(t.Target, fmt.Sprintf("dot=%.3f looking=%t", dot, looking), sight)
	return d, nil
}
