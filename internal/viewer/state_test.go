package viewer

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestObjectTransformOrder(t *testing.T) {
	o := ObjectTransform{
		Translate: mgl32.Vec3{1, 2, 3},
		RotateX:   -90,
		RotateY:   180,
		RotateZ:   30,
		Scale:     2,
	}

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(180))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-90))).
		Mul4(mgl32.Scale3D(2, 2, 2))
	if got := o.Matrix(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("got %v\nwant %v", got, want)
	}

	// X then Y then Z applied to the point, translation last.
	p := o.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.ApproxEqualThreshold(mgl32.Vec4{1 - 2*0.8660254, 2 - 2*0.5, 3, 1}, 1e-4) {
		t.Errorf("transformed point: got %v", p)
	}
}

func TestWingAdvance(t *testing.T) {
	w := WingState{Speed: 90}
	w.SetAnimate(true, 0)

	w.Advance(500 * time.Millisecond)
	if !mgl32.FloatEqualThreshold(w.Angle, 45, 1e-4) {
		t.Errorf("after 0.5s: got %f, want 45", w.Angle)
	}
	w.Advance(1500 * time.Millisecond)
	if !mgl32.FloatEqualThreshold(w.Angle, 135, 1e-4) {
		t.Errorf("after 1.5s: got %f, want 135", w.Angle)
	}
}

func TestWingFirstFrameDoesNotAdvance(t *testing.T) {
	w := WingState{Speed: 90, Animate: true}

	w.Advance(10 * time.Second)
	if w.Angle != 0 {
		t.Errorf("first frame advanced to %f", w.Angle)
	}
	w.Advance(11 * time.Second)
	if !mgl32.FloatEqualThreshold(w.Angle, 90, 1e-4) {
		t.Errorf("second frame: got %f, want 90", w.Angle)
	}
}

func TestWingStoppedKeepsClock(t *testing.T) {
	w := WingState{Speed: 90}
	w.Advance(1 * time.Second)
	w.Advance(5 * time.Second)
	if w.Angle != 0 {
		t.Errorf("stopped wing moved to %f", w.Angle)
	}

	// Turning animation on restarts the clock at the toggle time.
	w.SetAnimate(true, 9*time.Second)
	w.Advance(10 * time.Second)
	if !mgl32.FloatEqualThreshold(w.Angle, 90, 1e-4) {
		t.Errorf("got %f, want 90", w.Angle)
	}
}

func TestWingSetAngleIgnoredWhileAnimating(t *testing.T) {
	w := WingState{Speed: 90}
	w.SetAngle(30)
	if w.Angle != 30 {
		t.Fatalf("manual angle not applied: %f", w.Angle)
	}

	w.SetAnimate(true, 0)
	w.SetAngle(200)
	if w.Angle != 30 {
		t.Errorf("manual angle applied while animating: %f", w.Angle)
	}
}

func TestWingPivotFixesCenter(t *testing.T) {
	w := WingState{Angle: 73}
	center := mgl32.Vec3{4, -2, 7}
	m := w.Pivot(center)

	got := m.Mul4x1(center.Vec4(1)).Vec3()
	if !got.ApproxEqualThreshold(center, 1e-4) {
		t.Errorf("pivot moved center to %v", got)
	}

	want := mgl32.Translate3D(4, -2, 7).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(73))).
		Mul4(mgl32.Translate3D(-4, 2, -7))
	if !m.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("got %v\nwant %v", m, want)
	}
}

func TestNewSceneStateDefaults(t *testing.T) {
	s := NewSceneState()
	if s.Camera.Distance != 100 || s.Camera.Target != (mgl32.Vec3{0, 10, 0}) {
		t.Errorf("unexpected camera %+v", s.Camera)
	}
	if s.Object.RotateX != -90 || s.Object.RotateY != 180 || s.Object.Scale != 1 {
		t.Errorf("unexpected object transform %+v", s.Object)
	}
	if s.Wing.Speed != 90 || s.Wing.Animate {
		t.Errorf("unexpected wing %+v", s.Wing)
	}
	if s.Texture.Tiling != 8 || s.Texture.Mix != 0.5 {
		t.Errorf("unexpected texture %+v", s.Texture)
	}
}
