package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/assets"
	"github.com/Faultbox/fanview/internal/config"
	"github.com/Faultbox/fanview/internal/engine/debug"
	"github.com/Faultbox/fanview/internal/engine/input"
	"github.com/Faultbox/fanview/internal/engine/picking"
	"github.com/Faultbox/fanview/internal/engine/texture"
	"github.com/Faultbox/fanview/internal/logger"
	"github.com/Faultbox/fanview/internal/viewer"
)

// wheelNotch converts one SDL wheel step to the pixel delta browsers report.
const wheelNotch = 100

// ViewerMode shows an OBJ mesh with an orbit camera, wing animation and
// optional hover picking.
type ViewerMode struct {
	cfg    *config.Config
	state  *viewer.SceneState
	opts   viewer.SceneOptions
	assets *assets.Manager
	loader *viewer.Loader

	composer viewer.Composer
	frame    viewer.Frame
	scene    *viewer.Scene

	picker  *picking.Picker
	targets []picking.Target
	pickAt  *[2]int // pending hover position in drawable pixels, origin top-left
	label   string

	shots *debug.ScreenshotCapture
	drag  dragState

	// Surface images chosen in the file dialog, uploaded by the frame loop.
	chooseImage  func() (string, error)
	pendingImage chan string
	choosing     atomic.Bool

	alert func(message string)
	app   *App
	log   *zap.Logger
}

type dragState struct {
	active       bool
	lastX, lastY int
}

// move returns the delta since the last position and records the new one.
func (d *dragState) move(x, y int) (dx, dy float32) {
	dx, dy = float32(x-d.lastX), float32(y-d.lastY)
	d.lastX, d.lastY = x, y
	return dx, dy
}

// NewViewerMode builds the viewer state from configuration.
func NewViewerMode(cfg *config.Config) (*ViewerMode, error) {
	state, err := sceneState(cfg)
	if err != nil {
		return nil, err
	}

	m := &ViewerMode{
		cfg:    cfg,
		state:  state,
		opts:   sceneOptions(cfg.Mesh),
		assets: assets.NewManager(),
		loader: viewer.NewLoader(),
		shots:  debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "fanview"),
		log:    logger.Named("viewer"),

		chooseImage:  chooseImageFile,
		pendingImage: make(chan string, 1),
	}
	for _, dir := range cfg.Mesh.AssetDirs {
		m.assets.AddDir(dir)
	}
	return m, nil
}

// State exposes the live scene state.
func (m *ViewerMode) State() *viewer.SceneState {
	return m.state
}

// Enter starts the mesh load and sets up picking and the surface image.
func (m *ViewerMode) Enter(a *App) error {
	m.app = a
	m.alert = a.Alert

	w, h := a.DrawableSize()
	picker, err := picking.New(int32(w), int32(h))
	if err != nil {
		m.log.Warn("picking unavailable", zap.Error(err))
	} else {
		m.picker = picker
	}

	if path := m.cfg.Texture.Image; path != "" {
		if err := m.loadImage(path); err != nil {
			m.log.Warn("surface image not loaded", zap.String("path", path), zap.Error(err))
			m.state.Texture.UseImage = false
		}
	}

	source := m.cfg.Mesh.Source
	load := viewer.LoadMesh(m.assets, source, m.opts)
	if err := m.loader.Start(context.Background(), m.cfg.Mesh.LoadTimeout, load); err != nil {
		return fmt.Errorf("start mesh load: %w", err)
	}
	a.SetTitle(m.title())
	return nil
}

func (m *ViewerMode) loadImage(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Mesh.LoadTimeout)
	defer cancel()

	data, err := m.assets.Load(ctx, path)
	if err != nil {
		return err
	}
	img, err := texture.Prepare(data)
	if err != nil {
		return err
	}
	return m.app.Renderer().SetImage(img)
}

// Exit cancels a pending load and frees GL objects.
func (m *ViewerMode) Exit() error {
	m.loader.Close()
	m.assets.Close()
	if m.picker != nil {
		m.picker.Destroy()
	}
	m.app.Renderer().ClearScene()
	return nil
}

// HandleEvent maps keys to viewer actions and the mouse to the camera.
func (m *ViewerMode) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventKeyDown:
		m.handleKey(ev)

	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			m.drag = dragState{active: true, lastX: ev.MouseX, lastY: ev.MouseY}
			m.pickAt = nil
		}

	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			m.drag.active = false
		}

	case input.EventMouseMove:
		if m.drag.active {
			dx, dy := m.drag.move(ev.MouseX, ev.MouseY)
			m.state.Camera.HandleDrag(dx, dy)
			return
		}
		if m.state.Debug.Pick {
			x, y := m.app.ToPixels(ev.MouseX, ev.MouseY)
			m.pickAt = &[2]int{x, y}
		}

	case input.EventMouseWheel:
		m.state.Camera.HandleZoom(-ev.WheelY * wheelNotch)

	case input.EventWindowResize:
		if m.picker != nil {
			w, h := m.app.DrawableSize()
			m.picker.Resize(int32(w), int32(h))
		}
	}
}

func (m *ViewerMode) handleKey(ev input.Event) {
	switch ev.Key {
	case sdl.SCANCODE_F12:
		m.screenshot()
		return
	case sdl.SCANCODE_F11:
		m.pickScreenshot()
		return
	case sdl.SCANCODE_F5:
		m.saveView()
		return
	case sdl.SCANCODE_O:
		m.openImage()
		return
	}

	action := viewerAction(ev.Key)
	if action == viewer.ActionNone {
		return
	}
	if ev.Repeat && action == viewer.ActionToggleWing {
		return
	}
	m.state.Apply(action, m.app.Now())
	if action == viewer.ActionTogglePick && !m.state.Debug.Pick {
		m.label = ""
		m.pickAt = nil
	}
	if action == viewer.ActionToggleImage && m.state.Texture.UseImage && !m.app.Renderer().HasImage() {
		m.log.Info("no surface image loaded, using tiles")
	}
	m.log.Debug("action", zap.Int("action", int(action)), zap.String("state", m.state.Describe()))
}

// Update polls the loader and advances the wing animation.
func (m *ViewerMode) Update(now time.Duration) error {
	prev := m.loader.State()
	st := m.loader.Poll()
	if st != prev {
		m.onLoadState(st)
	}
	select {
	case path := <-m.pendingImage:
		m.useImage(path)
	default:
	}
	m.state.Wing.Advance(now)
	m.app.SetTitle(m.title())
	return nil
}

func (m *ViewerMode) onLoadState(st viewer.LoadState) {
	switch st {
	case viewer.Ready:
		scene, err := m.loader.Scene()
		if err != nil {
			return
		}
		m.scene = scene
		m.app.Renderer().SetScene(scene)
	case viewer.Failed:
		m.log.Error("mesh unavailable, nothing will be drawn",
			zap.String("source", m.cfg.Mesh.Source),
			zap.Error(m.loader.Err()),
		)
		m.alert(loadFailureMessage(m.cfg.Mesh.Source, m.loader.Err()))
	}
}

func loadFailureMessage(source string, err error) string {
	return fmt.Sprintf("Could not load %s:\n%v\n\nNothing will be drawn.", source, err)
}

// Render draws the scene once loaded, then resolves a pending hover pick.
func (m *ViewerMode) Render() error {
	if m.scene == nil {
		return nil
	}
	r := m.app.Renderer()
	m.frame = m.composer.Compose(m.state, m.scene, r.Aspect())
	r.DrawFrame(m.frame)

	if m.pickAt != nil && m.state.Debug.Pick && !m.drag.active && m.picker != nil {
		w, h := r.Size()
		idx := picking.NoObject
		if m.scene.CursorMayHit(m.frame, float32(m.pickAt[0]), float32(m.pickAt[1]), float32(w), float32(h)) {
			x, y := m.pickAt[0], picking.ReadbackY(m.pickAt[1], h)
			m.targets = r.PickTargets(m.frame, m.targets)
			idx = m.picker.Pick(int32(x), int32(y), m.frame.Projection, m.frame.View, m.targets)
		}
		m.label = m.scene.PickLabel(idx)
		m.pickAt = nil
	}
	return nil
}

func (m *ViewerMode) title() string {
	base := "fanview: " + m.cfg.Mesh.Source
	switch m.loader.State() {
	case viewer.Loading:
		return base + " (loading)"
	case viewer.Failed:
		return fmt.Sprintf("%s (load failed: %v)", base, m.loader.Err())
	}
	if m.state.Debug.Pick && m.label != "" {
		return base + " | " + m.label
	}
	return base
}

func (m *ViewerMode) screenshot() {
	w, h := m.app.Renderer().Size()
	path, err := m.shots.CaptureScreen(w, h)
	if err != nil {
		m.log.Error("screenshot failed", zap.Error(err))
		return
	}
	m.log.Info("screenshot saved", zap.String("path", path))
}

func (m *ViewerMode) pickScreenshot() {
	if m.picker == nil || !m.picker.Enabled() {
		m.log.Warn("pick buffer unavailable")
		return
	}
	pixels, w, h := m.picker.ReadPixels()
	path, err := m.shots.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		m.log.Error("pick buffer capture failed", zap.Error(err))
		return
	}
	m.log.Info("pick buffer saved", zap.String("path", path))
}

// openImage shows the file dialog off the frame loop. At most one dialog
// is open at a time.
func (m *ViewerMode) openImage() {
	if !m.choosing.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer m.choosing.Store(false)
		m.requestImage()
	}()
}

// requestImage queues the chosen file for the frame loop, which owns the
// GL context. Cancelling the dialog is not an error.
func (m *ViewerMode) requestImage() {
	path, err := m.chooseImage()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			m.log.Warn("file dialog failed", zap.Error(err))
		}
		return
	}
	select {
	case m.pendingImage <- path:
	default:
		m.log.Debug("image already queued", zap.String("path", path))
	}
}

func (m *ViewerMode) useImage(path string) {
	if err := m.loadImage(path); err != nil {
		m.log.Warn("surface image not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	m.cfg.Texture.Image = path
	m.state.Texture.UseImage = true
}

func chooseImageFile() (string, error) {
	return dialog.File().
		Filter("Images", "png", "jpg", "jpeg", "bmp", "webp").
		Filter("All Files", "*").
		Title("Open Surface Image").
		Load()
}

// saveView stores the current camera, transform, wing and lighting in the
// config file.
func (m *ViewerMode) saveView() {
	storeState(m.cfg, m.state)
	if err := m.cfg.Save(); err != nil {
		m.log.Error("saving view failed", zap.String("path", m.cfg.Path()), zap.Error(err))
		return
	}
	m.log.Info("view saved", zap.String("path", m.cfg.Path()))
}
