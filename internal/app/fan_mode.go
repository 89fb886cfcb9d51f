package app

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/config"
	"github.com/Faultbox/fanview/internal/engine/camera"
	"github.com/Faultbox/fanview/internal/engine/input"
	"github.com/Faultbox/fanview/internal/engine/lighting"
	"github.com/Faultbox/fanview/internal/fan"
	"github.com/Faultbox/fanview/internal/logger"
)

// Joint steps in degrees, and blade spin in degrees per second.
const (
	frameStep = 5
	bladeStep = 10
	spinSpeed = 180
)

// FanMode shows the hierarchical cube fan under a fixed orthographic view.
type FanMode struct {
	model      *fan.Model
	list       fan.DrawList
	projection camera.Ortho
	view       mgl32.Mat4
	light      lighting.PointLight
	material   lighting.Material

	spin     bool
	lastSpin time.Duration
	drag     dragState
	app      *App
	log      *zap.Logger
}

// NewFanMode builds the fan from configuration.
func NewFanMode(cfg *config.Config) (*FanMode, error) {
	m := &FanMode{
		model:      fan.New(fanDimensions(cfg.Fan)),
		projection: camera.Ortho{Left: -6, Right: 6, Bottom: -10, Top: 6, Near: -6, Far: 6},
		view:       mgl32.Ident4(),
		light:      lighting.DefaultPointLight(),
		material:   lighting.DefaultMaterial(),
		log:        logger.Named("fan"),
	}
	m.model.Position = mgl32.Vec2(cfg.Fan.Position)
	m.model.SetFrameAngle(cfg.Fan.FrameAngle)
	m.model.SetBladeAngle(cfg.Fan.BladeAngle)

	color, err := lighting.ParseHexColor(cfg.Lighting.Color)
	if err != nil {
		return nil, err
	}
	m.light.SetColor(color)
	m.light.Enabled = cfg.Lighting.Enabled
	m.light.Position = mgl32.Vec3{0, 4, 10}
	return m, nil
}

// Model exposes the fan for inspection.
func (m *FanMode) Model() *fan.Model {
	return m.model
}

// Enter implements Mode.
func (m *FanMode) Enter(a *App) error {
	m.app = a
	a.SetTitle(m.title())
	return nil
}

// Exit implements Mode.
func (m *FanMode) Exit() error {
	return nil
}

// HandleEvent turns the joints from the keyboard and drags the fan.
func (m *FanMode) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventKeyDown:
		m.handleKey(ev)
	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			m.drag = dragState{active: true, lastX: ev.MouseX, lastY: ev.MouseY}
		}
	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			m.drag.active = false
		}
	case input.EventMouseMove:
		if m.drag.active {
			m.model.Drag(m.drag.move(ev.MouseX, ev.MouseY))
		}
	}
}

func (m *FanMode) handleKey(ev input.Event) {
	switch ev.Key {
	case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
		m.model.SetFrameAngle(m.model.FrameAngle() - frameStep)
	case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
		m.model.SetFrameAngle(m.model.FrameAngle() + frameStep)
	case sdl.SCANCODE_W, sdl.SCANCODE_UP:
		m.model.SetBladeAngle(m.model.BladeAngle() + bladeStep)
	case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
		m.model.SetBladeAngle(m.model.BladeAngle() - bladeStep)
	case sdl.SCANCODE_SPACE:
		if !ev.Repeat {
			m.spin = !m.spin
			m.lastSpin = m.app.Now()
		}
	case sdl.SCANCODE_BACKSPACE:
		m.model.SetFrameAngle(0)
		m.model.SetBladeAngle(0)
		m.model.Position = mgl32.Vec2{0, -8}
	default:
		return
	}
	m.app.SetTitle(m.title())
}

// Update spins the blades when enabled.
func (m *FanMode) Update(now time.Duration) error {
	if m.spin {
		dt := float32((now - m.lastSpin).Seconds())
		m.model.SetBladeAngle(wrapAngle(m.model.BladeAngle() + spinSpeed*dt))
	}
	m.lastSpin = now
	return nil
}

// Render records the graph traversal and draws every cube.
func (m *FanMode) Render() error {
	m.list.Reset()
	if err := m.model.Render(&m.list); err != nil {
		return err
	}
	r := m.app.Renderer()
	r.DrawCubes(m.projection.Matrix(r.Aspect()), m.view, m.light, m.material, &m.list)
	return nil
}

func (m *FanMode) title() string {
	return "fanmodel: frame " + formatDegrees(m.model.FrameAngle()) +
		", blade " + formatDegrees(m.model.BladeAngle())
}
