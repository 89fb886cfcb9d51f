// Package viewer turns a loaded mesh plus the live scene parameters into a
// per-frame list of draw calls. It owns no GPU state.
package viewer

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/internal/engine/camera"
	"github.com/Faultbox/fanview/internal/engine/lighting"
)

// ObjectTransform is the user transform applied to the whole mesh.
// Angles are in degrees.
type ObjectTransform struct {
	Translate mgl32.Vec3
	RotateX   float32
	RotateY   float32
	RotateZ   float32
	Scale     float32
}

// DefaultObjectTransform stands the imported mesh upright and faces it
// toward the camera.
func DefaultObjectTransform() ObjectTransform {
	return ObjectTransform{
		RotateX: -90,
		RotateY: 180,
		Scale:   1,
	}
}

// Matrix returns T * Rz * Ry * Rx * S.
func (o ObjectTransform) Matrix() mgl32.Mat4 {
	s := mgl32.Scale3D(o.Scale, o.Scale, o.Scale)
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(o.RotateX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(o.RotateY))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(o.RotateZ))
	t := mgl32.Translate3D(o.Translate[0], o.Translate[1], o.Translate[2])
	return t.Mul4(rz.Mul4(ry.Mul4(rx.Mul4(s))))
}

// WingState drives the extra rotation of the wing objects about their pivot.
type WingState struct {
	Animate bool
	Speed   float32 // degrees per second
	Angle   float32 // degrees

	last    time.Duration
	hasLast bool
}

// SetAnimate toggles animation. Turning it on restarts the frame clock at now
// so the first animated frame does not jump.
func (w *WingState) SetAnimate(on bool, now time.Duration) {
	w.Animate = on
	if on {
		w.last = now
		w.hasLast = true
	}
}

// SetAngle overrides the angle. Ignored while animating.
func (w *WingState) SetAngle(degrees float32) {
	if !w.Animate {
		w.Angle = degrees
	}
}

// Advance moves the angle by Speed times the time since the previous call.
// The first call only records the timestamp.
func (w *WingState) Advance(now time.Duration) {
	if w.Animate && w.hasLast {
		w.Angle += w.Speed * float32((now - w.last).Seconds())
	}
	w.last = now
	w.hasLast = true
}

// Pivot returns Translate(center) * RotateY(angle) * Translate(-center).
func (w *WingState) Pivot(center mgl32.Vec3) mgl32.Mat4 {
	pos := mgl32.Translate3D(center[0], center[1], center[2])
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(w.Angle))
	neg := mgl32.Translate3D(-center[0], -center[1], -center[2])
	return pos.Mul4(rot.Mul4(neg))
}

// TextureParams configures the two-color procedural tile blend.
type TextureParams struct {
	Enabled  bool
	Color1   mgl32.Vec3
	Color2   mgl32.Vec3
	Tiling   float32
	Mix      float32
	UseImage bool
}

// DefaultTextureParams returns a light grey checker, disabled.
func DefaultTextureParams() TextureParams {
	return TextureParams{
		Color1: mgl32.Vec3{1, 1, 1},
		Color2: mgl32.Vec3{0.82, 0.82, 0.82},
		Tiling: 8,
		Mix:    0.5,
	}
}

// DebugState holds developer toggles.
type DebugState struct {
	Pick bool
}

// HomeView is the pose ActionReset returns to. Angles are in degrees.
type HomeView struct {
	Object   ObjectTransform
	Pitch    float32
	Yaw      float32
	Distance float32
}

// SceneState is every parameter the frame composer reads. Input handlers
// mutate one owned instance between frames.
type SceneState struct {
	Camera     *camera.OrbitCamera
	Projection camera.Perspective
	Object     ObjectTransform
	Wing       WingState
	Light      lighting.PointLight
	Material   lighting.Material
	Texture    TextureParams
	Debug      DebugState
	Home       HomeView
}

// NewSceneState returns the default viewer state.
func NewSceneState() *SceneState {
	return &SceneState{
		Camera:     camera.NewOrbitCamera(),
		Projection: camera.Perspective{FovY: 45, Near: 0.1, Far: 1000},
		Object:     DefaultObjectTransform(),
		Wing:       WingState{Speed: 90},
		Light:      lighting.DefaultPointLight(),
		Material:   lighting.DefaultMaterial(),
		Texture:    DefaultTextureParams(),
		Home:       HomeView{Object: DefaultObjectTransform(), Distance: 100},
	}
}
