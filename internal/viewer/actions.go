package viewer

import (
	"fmt"
	"time"
)

// Action is a discrete user command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionTranslateXPos
	ActionTranslateXNeg
	ActionTranslateYPos
	ActionTranslateYNeg
	ActionTranslateZPos
	ActionTranslateZNeg
	ActionRotateXPos
	ActionRotateXNeg
	ActionRotateYPos
	ActionRotateYNeg
	ActionRotateZPos
	ActionRotateZNeg
	ActionScaleUp
	ActionScaleDown
	ActionCameraPitchUp
	ActionCameraPitchDown
	ActionCameraYawLeft
	ActionCameraYawRight
	ActionZoomIn
	ActionZoomOut
	ActionToggleWing
	ActionWingFaster
	ActionWingSlower
	ActionWingAngleUp
	ActionWingAngleDown
	ActionToggleLight
	ActionToggleTexture
	ActionToggleImage
	ActionTogglePick
	ActionReset
)

// Step sizes for keyboard controls.
const (
	translateStep = 1
	rotateStep    = 15 // degrees
	scaleStep     = 0.1
	minScale      = 0.1
	cameraStep    = 5  // degrees
	zoomStep      = 10 // world units
	wingSpeedStep = 15 // degrees per second
	wingAngleStep = 10 // degrees
)

// Apply mutates the state for one action. now is the frame clock, used when
// the wing animation is switched on.
func (s *SceneState) Apply(a Action, now time.Duration) {
	switch a {
	case ActionTranslateXPos:
		s.Object.Translate[0] += translateStep
	case ActionTranslateXNeg:
		s.Object.Translate[0] -= translateStep
	case ActionTranslateYPos:
		s.Object.Translate[1] += translateStep
	case ActionTranslateYNeg:
		s.Object.Translate[1] -= translateStep
	case ActionTranslateZPos:
		s.Object.Translate[2] += translateStep
	case ActionTranslateZNeg:
		s.Object.Translate[2] -= translateStep

	case ActionRotateXPos:
		s.Object.RotateX = wrapDegrees(s.Object.RotateX + rotateStep)
	case ActionRotateXNeg:
		s.Object.RotateX = wrapDegrees(s.Object.RotateX - rotateStep)
	case ActionRotateYPos:
		s.Object.RotateY = wrapDegrees(s.Object.RotateY + rotateStep)
	case ActionRotateYNeg:
		s.Object.RotateY = wrapDegrees(s.Object.RotateY - rotateStep)
	case ActionRotateZPos:
		s.Object.RotateZ = wrapDegrees(s.Object.RotateZ + rotateStep)
	case ActionRotateZNeg:
		s.Object.RotateZ = wrapDegrees(s.Object.RotateZ - rotateStep)

	case ActionScaleUp:
		s.Object.Scale += scaleStep
	case ActionScaleDown:
		s.Object.Scale = max(s.Object.Scale-scaleStep, minScale)

	case ActionCameraPitchUp, ActionCameraPitchDown, ActionCameraYawLeft, ActionCameraYawRight:
		pitch, yaw := s.Camera.RotationDegrees()
		switch a {
		case ActionCameraPitchUp:
			pitch += cameraStep
		case ActionCameraPitchDown:
			pitch -= cameraStep
		case ActionCameraYawLeft:
			yaw -= cameraStep
		case ActionCameraYawRight:
			yaw += cameraStep
		}
		s.Camera.SetRotationDegrees(pitch, yaw)

	case ActionZoomIn:
		s.Camera.SetDistance(s.Camera.Distance - zoomStep)
	case ActionZoomOut:
		s.Camera.SetDistance(s.Camera.Distance + zoomStep)

	case ActionToggleWing:
		s.Wing.SetAnimate(!s.Wing.Animate, now)
	case ActionWingFaster:
		s.Wing.Speed += wingSpeedStep
	case ActionWingSlower:
		s.Wing.Speed = max(s.Wing.Speed-wingSpeedStep, 0)
	case ActionWingAngleUp:
		s.Wing.SetAngle(s.Wing.Angle + wingAngleStep)
	case ActionWingAngleDown:
		s.Wing.SetAngle(s.Wing.Angle - wingAngleStep)

	case ActionToggleLight:
		s.Light.Enabled = !s.Light.Enabled
	case ActionToggleTexture:
		s.Texture.Enabled = !s.Texture.Enabled
	case ActionToggleImage:
		s.Texture.UseImage = !s.Texture.UseImage
	case ActionTogglePick:
		s.Debug.Pick = !s.Debug.Pick

	case ActionReset:
		s.Object = s.Home.Object
		s.Camera.SetRotationDegrees(s.Home.Pitch, s.Home.Yaw)
		s.Camera.SetDistance(s.Home.Distance)
	}
}

func wrapDegrees(d float32) float32 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// Describe returns a short human-readable summary for the window title.
func (s *SceneState) Describe() string {
	pitch, yaw := s.Camera.RotationDegrees()
	return formatState(pitch, yaw, s.Camera.Distance, s.Object, s.Wing)
}

func formatState(pitch, yaw, dist float32, o ObjectTransform, w WingState) string {
	wing := "off"
	if w.Animate {
		wing = "on"
	}
	return fmt.Sprintf("cam %.0f/%.0f d=%.0f | obj r=(%.0f,%.0f,%.0f) s=%.1f | wing %s %.0f°",
		pitch, yaw, dist, o.RotateX, o.RotateY, o.RotateZ, o.Scale, wing, w.Angle)
}
