package geometry

import "github.com/taigrr/gizmo/pkg/math3d"

// RadialTrigger reports the distance from center to point and whether it
// falls strictly inside radius.
func RadialTrigger(center, point math3d.Vec3, radius float64) (distance float64, inside bool) {
	distance = point.Distance(center)
	return distance, distance < radius
}

// LookTrigger measures how directly an object at target faces a trigger,
// given that it looks towards viewer. The result is the cosine of the angle
// between target→viewer and target→trigger; looking is true once it reaches
// sensitivity. Coincident points give a cosine of zero.
func LookTrigger(viewer, target, trigger math3d.Vec3, sensitivity float64) (dot float64, looking bool) {
	toViewer := viewer.Sub(target).Normalize()
	toTrigger := trigger.Sub(target).Normalize()
	dot = toViewer.Dot(toTrigger)
	return dot, dot >= sensitivity
}
