// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera orbits around a target point. The eye is derived from the
// spherical parameters every time it is needed and never stored.
type OrbitCamera struct {
	Target mgl32.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // world units per wheel unit
}

// NewOrbitCamera creates an orbit camera looking at (0, 10, 0) from 100 units.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Target:          mgl32.Vec3{0, 10, 0},
		Distance:        100,
		MinDistance:     50,
		MaxDistance:     500,
		MinPitch:        -math32.Pi / 2,
		MaxPitch:        math32.Pi / 2,
		DragSensitivity: 0.01,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinX, cosX := math32.Sincos(c.RotationX)
	sinY, cosY := math32.Sincos(c.RotationY)
	offset := mgl32.Vec3{sinY * cosX, sinX, cosY * cosX}.Mul(c.Distance)
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// HandleDrag rotates by a mouse delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY += deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.clampPitch()
}

// HandleZoom moves the eye along the view direction by a wheel delta.
// Positive deltas move away from the target.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.SetDistance(c.Distance + delta*c.ZoomSensitivity)
}

// SetDistance sets the orbit radius within the configured bounds.
func (c *OrbitCamera) SetDistance(d float32) {
	c.Distance = mgl32.Clamp(d, c.MinDistance, c.MaxDistance)
}

// SetRotationDegrees sets absolute pitch and yaw given in degrees.
func (c *OrbitCamera) SetRotationDegrees(pitch, yaw float32) {
	c.RotationX = mgl32.DegToRad(pitch)
	c.RotationY = mgl32.DegToRad(yaw)
	c.clampPitch()
}

// RotationDegrees returns pitch and yaw in degrees.
func (c *OrbitCamera) RotationDegrees() (pitch, yaw float32) {
	return mgl32.RadToDeg(c.RotationX), mgl32.RadToDeg(c.RotationY)
}

func (c *OrbitCamera) clampPitch() {
	c.RotationX = mgl32.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}
