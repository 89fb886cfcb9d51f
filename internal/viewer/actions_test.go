package viewer

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestApplyObjectTransform(t *testing.T) {
	s := NewSceneState()
	s.Apply(ActionTranslateXPos, 0)
	s.Apply(ActionTranslateYNeg, 0)
	s.Apply(ActionTranslateZPos, 0)
	s.Apply(ActionRotateYPos, 0)
	s.Apply(ActionRotateXNeg, 0)
	s.Apply(ActionScaleUp, 0)

	if s.Object.Translate != (mgl32.Vec3{1, -1, 1}) {
		t.Errorf("translate: got %v", s.Object.Translate)
	}
	if s.Object.RotateY != -165 {
		t.Errorf("rotate Y should wrap to -165, got %f", s.Object.RotateY)
	}
	if s.Object.RotateX != -105 {
		t.Errorf("rotate X: got %f", s.Object.RotateX)
	}
	if !mgl32.FloatEqual(s.Object.Scale, 1.1) {
		t.Errorf("scale: got %f", s.Object.Scale)
	}

	for i := 0; i < 50; i++ {
		s.Apply(ActionScaleDown, 0)
	}
	if s.Object.Scale < 0.1 {
		t.Errorf("scale dropped below minimum: %f", s.Object.Scale)
	}

	s.Apply(ActionReset, 0)
	if s.Object != DefaultObjectTransform() {
		t.Errorf("reset: got %+v", s.Object)
	}
}

func TestApplyCamera(t *testing.T) {
	s := NewSceneState()
	s.Apply(ActionCameraPitchUp, 0)
	s.Apply(ActionCameraYawLeft, 0)

	pitch, yaw := s.Camera.RotationDegrees()
	if !mgl32.FloatEqualThreshold(pitch, 5, 1e-4) || !mgl32.FloatEqualThreshold(yaw, -5, 1e-4) {
		t.Errorf("got pitch %f yaw %f", pitch, yaw)
	}

	for i := 0; i < 100; i++ {
		s.Apply(ActionZoomIn, 0)
	}
	if s.Camera.Distance != 50 {
		t.Errorf("zoom in should clamp at 50, got %f", s.Camera.Distance)
	}
	for i := 0; i < 100; i++ {
		s.Apply(ActionZoomOut, 0)
	}
	if s.Camera.Distance != 500 {
		t.Errorf("zoom out should clamp at 500, got %f", s.Camera.Distance)
	}
}

func TestApplyWing(t *testing.T) {
	s := NewSceneState()

	s.Apply(ActionWingAngleUp, 0)
	if s.Wing.Angle != 10 {
		t.Errorf("manual angle: got %f", s.Wing.Angle)
	}

	s.Apply(ActionToggleWing, 2*time.Second)
	if !s.Wing.Animate {
		t.Fatal("expected animation on")
	}
	s.Apply(ActionWingAngleUp, 0)
	if s.Wing.Angle != 10 {
		t.Errorf("manual angle changed while animating: %f", s.Wing.Angle)
	}

	s.Wing.Advance(3 * time.Second)
	if !mgl32.FloatEqualThreshold(s.Wing.Angle, 100, 1e-4) {
		t.Errorf("animated angle: got %f, want 100", s.Wing.Angle)
	}

	for i := 0; i < 10; i++ {
		s.Apply(ActionWingSlower, 0)
	}
	if s.Wing.Speed != 0 {
		t.Errorf("speed should floor at 0, got %f", s.Wing.Speed)
	}
}

func TestApplyToggles(t *testing.T) {
	s := NewSceneState()
	s.Apply(ActionToggleLight, 0)
	s.Apply(ActionToggleTexture, 0)
	s.Apply(ActionToggleImage, 0)
	s.Apply(ActionTogglePick, 0)

	if s.Light.Enabled || !s.Texture.Enabled || !s.Texture.UseImage || !s.Debug.Pick {
		t.Errorf("unexpected toggles: light=%v tex=%v img=%v pick=%v",
			s.Light.Enabled, s.Texture.Enabled, s.Texture.UseImage, s.Debug.Pick)
	}
}

func TestDescribe(t *testing.T) {
	s := NewSceneState()
	got := s.Describe()
	if !strings.Contains(got, "d=100") || !strings.Contains(got, "wing off") {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestApplyResetReturnsHome(t *testing.T) {
	s := NewSceneState()
	s.Home = HomeView{
		Object:   ObjectTransform{RotateY: 90, Scale: 2},
		Pitch:    20,
		Yaw:      -30,
		Distance: 250,
	}

	s.Apply(ActionTranslateXPos, 0)
	s.Apply(ActionCameraPitchDown, 0)
	s.Apply(ActionZoomIn, 0)
	s.Apply(ActionReset, 0)

	if s.Object != s.Home.Object {
		t.Errorf("object: got %+v, want %+v", s.Object, s.Home.Object)
	}
	pitch, yaw := s.Camera.RotationDegrees()
	if !mgl32.FloatEqualThreshold(pitch, 20, 1e-4) || !mgl32.FloatEqualThreshold(yaw, -30, 1e-4) {
		t.Errorf("camera angles: got %f/%f, want 20/-30", pitch, yaw)
	}
	if s.Camera.Distance != 250 {
		t.Errorf("camera distance: got %f, want 250", s.Camera.Distance)
	}
}
