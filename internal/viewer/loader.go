package viewer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/logger"
	"github.com/Faultbox/fanview/pkg/obj"
)

// ErrNotReady is returned when the scene is requested before loading finished.
var ErrNotReady = errors.New("scene not ready")

// LoadState is the mesh loader's position in its lifecycle.
type LoadState int

const (
	Unloaded LoadState = iota
	Loading
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// LoadFunc produces a scene. It runs off the frame loop's goroutine.
type LoadFunc func(ctx context.Context) (*Scene, error)

type loadResult struct {
	scene *Scene
	err   error
}

// Loader runs one asynchronous load and hands the result to the frame loop.
// All methods except the load itself are called from the frame loop only.
// Failed is terminal: there is no automatic retry.
type Loader struct {
	state  LoadState
	scene  *Scene
	err    error
	done   chan loadResult
	cancel context.CancelFunc
}

// NewLoader returns an idle loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Start begins loading. It is only valid in Unloaded.
func (l *Loader) Start(ctx context.Context, timeout time.Duration, load LoadFunc) error {
	if l.state != Unloaded {
		return fmt.Errorf("start loader: already %s", l.state)
	}

	if timeout > 0 {
		ctx, l.cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, l.cancel = context.WithCancel(ctx)
	}

	l.done = make(chan loadResult, 1)
	l.state = Loading
	go func() {
		scene, err := load(ctx)
		l.done <- loadResult{scene: scene, err: err}
	}()
	return nil
}

// Poll collects a finished load without blocking and returns the current state.
func (l *Loader) Poll() LoadState {
	if l.state != Loading {
		return l.state
	}
	select {
	case res := <-l.done:
		l.finish(res)
	default:
	}
	return l.state
}

func (l *Loader) finish(res loadResult) {
	l.cancel()
	switch {
	case res.err != nil:
		l.state, l.err = Failed, res.err
	case res.scene == nil:
		l.state, l.err = Failed, errors.New("load returned no scene")
	default:
		l.state, l.scene = Ready, res.scene
	}
}

// State returns the last observed state.
func (l *Loader) State() LoadState {
	return l.state
}

// Scene returns the loaded scene, or ErrNotReady.
func (l *Loader) Scene() (*Scene, error) {
	if l.state != Ready {
		return nil, fmt.Errorf("%w: %s", ErrNotReady, l.state)
	}
	return l.scene, nil
}

// Err returns the load failure, if any.
func (l *Loader) Err() error {
	return l.err
}

// Close cancels an in-flight load.
func (l *Loader) Close() {
	if l.cancel != nil {
		l.cancel()
	}
}

// Fetcher reads raw asset bytes.
type Fetcher interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// LoadMesh returns a LoadFunc that fetches, parses, scales and flattens the
// OBJ named source. Malformed geometry is logged and kept as-is.
func LoadMesh(f Fetcher, source string, opts SceneOptions) LoadFunc {
	return func(ctx context.Context) (*Scene, error) {
		log := logger.Named("loader")
		log.Info("loading mesh", zap.String("source", source))
		start := time.Now()

		raw, err := f.Load(ctx, source)
		if err != nil {
			log.Error("mesh load failed", zap.String("source", source), zap.Error(err))
			return nil, fmt.Errorf("loading %s: %w", source, err)
		}

		data, err := obj.Parse(bytes.NewReader(raw))
		if err != nil {
			log.Error("mesh parse failed", zap.String("source", source), zap.Error(err))
			return nil, fmt.Errorf("parsing %s: %w", source, err)
		}
		log.Debug("parsed mesh",
			zap.Int("lines", data.Lines),
			zap.Int("vertices", len(data.Vertices)),
			zap.Int("faces", len(data.Faces)),
			zap.Int("objects", len(data.Objects)),
		)
		if err := data.Validate(); err != nil {
			log.Warn("malformed geometry", zap.String("source", source), zap.Error(err))
		}

		if opts.Scale != 0 && opts.Scale != 1 {
			data = obj.Scale(data, opts.Scale, opts.Scale, opts.Scale)
		}
		scene := NewScene(obj.Flatten(data), opts)

		log.Info("mesh loaded",
			zap.String("source", source),
			zap.Int("objects", scene.Len()),
			zap.Int("triangles", data.TriangleCount()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return scene, nil
	}
}
