package main

import "github.com/charmbracelet/harmonica"

const (
	defaultYaw   = 0.6
	defaultPitch = 0.4
)

// OrbitAxis tracks position and velocity for one orbit angle with spring decay.
type OrbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis whose velocity decays smoothly to zero.
func NewOrbitAxis(fps int, position float64) OrbitAxis {
	return OrbitAxis{
		Position: position,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and springs velocity toward 0.
func (a *OrbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// OrbitState is the camera's yaw and pitch around the scene.
type OrbitState struct {
	Yaw, Pitch OrbitAxis
	fps        int
}

// NewOrbitState creates orbit springs ticking at fps.
func NewOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Yaw:   NewOrbitAxis(fps, defaultYaw),
		Pitch: NewOrbitAxis(fps, defaultPitch),
		fps:   fps,
	}
}

// Update advances both springs by one frame.
func (o *OrbitState) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
}

// ApplyImpulse adds angular velocity to both axes.
func (o *OrbitState) ApplyImpulse(yaw, pitch float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
}

// Reset returns the camera to its starting angles.
func (o *OrbitState) Reset() {
	o.Yaw = NewOrbitAxis(o.fps, defaultYaw)
	o.Pitch = NewOrbitAxis(o.fps, defaultPitch)
}
