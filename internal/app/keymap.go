package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/fanview/internal/viewer"
)

var viewerKeys = map[sdl.Scancode]viewer.Action{
	sdl.SCANCODE_RIGHT:    viewer.ActionTranslateXPos,
	sdl.SCANCODE_LEFT:     viewer.ActionTranslateXNeg,
	sdl.SCANCODE_UP:       viewer.ActionTranslateYPos,
	sdl.SCANCODE_DOWN:     viewer.ActionTranslateYNeg,
	sdl.SCANCODE_PAGEUP:   viewer.ActionTranslateZPos,
	sdl.SCANCODE_PAGEDOWN: viewer.ActionTranslateZNeg,

	sdl.SCANCODE_R: viewer.ActionRotateXPos,
	sdl.SCANCODE_F: viewer.ActionRotateXNeg,
	sdl.SCANCODE_E: viewer.ActionRotateYPos,
	sdl.SCANCODE_Q: viewer.ActionRotateYNeg,
	sdl.SCANCODE_X: viewer.ActionRotateZPos,
	sdl.SCANCODE_Z: viewer.ActionRotateZNeg,

	sdl.SCANCODE_EQUALS:   viewer.ActionScaleUp,
	sdl.SCANCODE_KP_PLUS:  viewer.ActionScaleUp,
	sdl.SCANCODE_MINUS:    viewer.ActionScaleDown,
	sdl.SCANCODE_KP_MINUS: viewer.ActionScaleDown,

	sdl.SCANCODE_I: viewer.ActionCameraPitchUp,
	sdl.SCANCODE_K: viewer.ActionCameraPitchDown,
	sdl.SCANCODE_J: viewer.ActionCameraYawLeft,
	sdl.SCANCODE_L: viewer.ActionCameraYawRight,
	sdl.SCANCODE_W: viewer.ActionZoomIn,
	sdl.SCANCODE_S: viewer.ActionZoomOut,

	sdl.SCANCODE_SPACE:        viewer.ActionToggleWing,
	sdl.SCANCODE_PERIOD:       viewer.ActionWingFaster,
	sdl.SCANCODE_COMMA:        viewer.ActionWingSlower,
	sdl.SCANCODE_RIGHTBRACKET: viewer.ActionWingAngleUp,
	sdl.SCANCODE_LEFTBRACKET:  viewer.ActionWingAngleDown,

	sdl.SCANCODE_1:         viewer.ActionToggleLight,
	sdl.SCANCODE_2:         viewer.ActionToggleTexture,
	sdl.SCANCODE_3:         viewer.ActionToggleImage,
	sdl.SCANCODE_P:         viewer.ActionTogglePick,
	sdl.SCANCODE_BACKSPACE: viewer.ActionReset,
}

// viewerAction maps a key to its viewer command, or ActionNone.
func viewerAction(sc sdl.Scancode) viewer.Action {
	return viewerKeys[sc]
}
