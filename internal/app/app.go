// Package app runs the SDL window loop and hosts one interactive mode.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/engine/input"
	"github.com/Faultbox/fanview/internal/engine/renderer"
	"github.com/Faultbox/fanview/internal/engine/window"
	"github.com/Faultbox/fanview/internal/logger"
)

// Mode is the interactive content shown in the window.
type Mode interface {
	// Enter is called once the GL context exists.
	Enter(a *App) error

	// Exit releases the mode's resources.
	Exit() error

	// HandleEvent processes one input event.
	HandleEvent(ev input.Event)

	// Update advances the mode to the frame clock.
	Update(now time.Duration) error

	// Render draws the current frame.
	Render() error
}

// Config holds window and renderer settings.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	ClearColor mgl32.Vec3
}

// App owns the window, GL renderer and input for a single mode.
type App struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	mode     Mode
	entered  bool
	start    time.Time
	title    string
	log      *zap.Logger
}

// New creates the window, the GL context and the renderer.
func New(cfg Config, mode Mode) (*App, error) {
	a := &App{
		config: cfg,
		mode:   mode,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the context the window just made current.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: cfg.ClearColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.title = cfg.Title
	return a, nil
}

// Renderer returns the GL renderer.
func (a *App) Renderer() *renderer.Renderer {
	return a.renderer
}

// Now returns the frame clock: time since Run started.
func (a *App) Now() time.Duration {
	return time.Since(a.start)
}

// DrawableSize returns the framebuffer size in pixels.
func (a *App) DrawableSize() (int, int) {
	return a.window.DrawableSize()
}

// ToPixels converts a window coordinate to a drawable pixel coordinate.
func (a *App) ToPixels(x, y int) (int, int) {
	sx, sy := a.window.PixelScale()
	return int(float32(x) * sx), int(float32(y) * sy)
}

// SetTitle updates the window title when it changes.
func (a *App) SetTitle(title string) {
	if title == a.title {
		return
	}
	a.title = title
	a.window.SetTitle(title)
}

// Alert shows a blocking error box. The message is logged if the box
// cannot be shown.
func (a *App) Alert(message string) {
	if err := a.window.ShowError(a.config.Title, message); err != nil {
		a.log.Error("alert not shown", zap.String("message", message), zap.Error(err))
	}
}

// Quit stops the loop after the current frame.
func (a *App) Quit() {
	a.running = false
}

// Run enters the mode and drives the frame loop until quit.
func (a *App) Run() error {
	a.start = time.Now()
	if err := a.mode.Enter(a); err != nil {
		return fmt.Errorf("enter mode: %w", err)
	}
	a.entered = true
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			break
		}

		for _, ev := range a.input.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				w, h := a.window.DrawableSize()
				a.renderer.Resize(w, h)
			case input.EventKeyDown:
				if ev.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
					continue
				}
			}
			a.mode.HandleEvent(ev)
		}

		if err := a.mode.Update(a.Now()); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		a.renderer.Begin()
		if err := a.mode.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close exits the mode and releases GL and window resources.
func (a *App) Close() error {
	a.log.Info("closing")

	var err error
	if a.entered {
		err = multierr.Append(err, a.mode.Exit())
		a.entered = false
	}
	if a.renderer != nil {
		err = multierr.Append(err, a.renderer.Close())
	}
	if a.window != nil {
		a.window.Close()
	}
	return err
}
