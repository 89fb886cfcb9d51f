// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/Faultbox/fanview/internal/engine/lighting"
	"github.com/Faultbox/fanview/internal/logger"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Camera   CameraConfig   `yaml:"camera"`
	Object   ObjectConfig   `yaml:"object"`
	Wing     WingConfig     `yaml:"wing"`
	Lighting LightingConfig `yaml:"lighting"`
	Texture  TextureConfig  `yaml:"texture"`
	Fan      FanConfig      `yaml:"fan"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`

	path string // file the config was read from
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ClearColor string `yaml:"clear_color"`
}

// MeshConfig selects the OBJ file and how its objects are presented.
type MeshConfig struct {
	Source         string        `yaml:"source"` // path or http(s) URL
	AssetDirs      []string      `yaml:"asset_dirs"`
	Scale          float32       `yaml:"scale"`
	Anchor         int           `yaml:"anchor"`
	Wings          []int         `yaml:"wings"`
	Highlights     []int         `yaml:"highlights"`
	HighlightColor [3]float32    `yaml:"highlight_color"`
	BaseColor      [3]float32    `yaml:"base_color"`
	LoadTimeout    time.Duration `yaml:"load_timeout"`
}

// CameraConfig holds the orbit camera and projection. Angles are degrees.
type CameraConfig struct {
	RotationX       float32    `yaml:"rotation_x"`
	RotationY       float32    `yaml:"rotation_y"`
	Distance        float32    `yaml:"distance"`
	Target          [3]float32 `yaml:"target"`
	FovY            float32    `yaml:"fov_y"`
	Near            float32    `yaml:"near"`
	Far             float32    `yaml:"far"`
	MinDistance     float32    `yaml:"min_distance"`
	MaxDistance     float32    `yaml:"max_distance"`
	DragSensitivity float32    `yaml:"drag_sensitivity"`
	ZoomSensitivity float32    `yaml:"zoom_sensitivity"`
}

// ObjectConfig is the initial mesh transform. Angles are degrees.
type ObjectConfig struct {
	Translate [3]float32 `yaml:"translate"`
	RotateX   float32    `yaml:"rotate_x"`
	RotateY   float32    `yaml:"rotate_y"`
	RotateZ   float32    `yaml:"rotate_z"`
	Scale     float32    `yaml:"scale"`
}

// WingConfig holds the wing pivot animation.
type WingConfig struct {
	Animate bool    `yaml:"animate"`
	Speed   float32 `yaml:"speed"` // degrees per second
	Angle   float32 `yaml:"angle"`
}

// LightingConfig holds the point light and material.
type LightingConfig struct {
	Enabled   bool       `yaml:"enabled"`
	Color     string     `yaml:"color"`
	Position  [3]float32 `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
	Ambient   float32    `yaml:"ambient"`
	Diffuse   float32    `yaml:"diffuse"`
	Specular  float32    `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// TextureConfig holds the procedural tile blend and the optional image.
type TextureConfig struct {
	Enabled bool    `yaml:"enabled"`
	Color1  string  `yaml:"color1"`
	Color2  string  `yaml:"color2"`
	Tiling  float32 `yaml:"tiling"`
	Mix     float32 `yaml:"mix"`
	Image   string  `yaml:"image"`
}

// FanConfig holds the hierarchical fan model's joints and layout.
type FanConfig struct {
	FrameAngle   float32    `yaml:"frame_angle"`
	BladeAngle   float32    `yaml:"blade_angle"`
	Position     [2]float32 `yaml:"position"`
	RingSegments int        `yaml:"ring_segments"`
	BladeCount   int        `yaml:"blade_count"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	Pick          bool   `yaml:"pick"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// FileConfig converts the rotation settings for the logger.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	fc := logger.DefaultFileConfig(l.LogFile)
	if l.MaxSizeMB > 0 {
		fc.MaxSizeMB = l.MaxSizeMB
	}
	if l.MaxBackups > 0 {
		fc.MaxBackups = l.MaxBackups
	}
	if l.MaxAgeDays > 0 {
		fc.MaxAgeDays = l.MaxAgeDays
	}
	fc.Compress = l.Compress
	return fc
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: "#e6e6e6",
		},
		Mesh: MeshConfig{
			Source:         "fan.obj",
			AssetDirs:      []string{"."},
			Scale:          0.1,
			Anchor:         18,
			Wings:          []int{19, 20, 21},
			Highlights:     []int{13, 14, 15, 16, 17, 19, 20, 21},
			HighlightColor: [3]float32{0.6, 0.8, 1.0},
			BaseColor:      [3]float32{0.95, 0.95, 0.95},
			LoadTimeout:    30 * time.Second,
		},
		Camera: CameraConfig{
			Distance:        100,
			Target:          [3]float32{0, 10, 0},
			FovY:            45,
			Near:            0.1,
			Far:             1000,
			MinDistance:     50,
			MaxDistance:     500,
			DragSensitivity: 0.01,
			ZoomSensitivity: 0.1,
		},
		Object: ObjectConfig{
			RotateX: -90,
			RotateY: 180,
			Scale:   1,
		},
		Wing: WingConfig{
			Speed: 90,
		},
		Lighting: LightingConfig{
			Enabled:   true,
			Color:     "#ffffff",
			Position:  [3]float32{50, 200, 100},
			Intensity: 1,
			Ambient:   0.2,
			Diffuse:   1,
			Specular:  0.5,
			Shininess: 32,
		},
		Texture: TextureConfig{
			Color1: "#ffffff",
			Color2: "#d1d1d1",
			Tiling: 8,
			Mix:    0.5,
		},
		Fan: FanConfig{
			Position:     [2]float32{0, -8},
			RingSegments: 24,
			BladeCount:   3,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0,
		"graphics: size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	err = multierr.Append(err, checkColor("graphics.clear_color", c.Graphics.ClearColor))

	check(c.Mesh.Source != "", "mesh: source is empty")
	check(c.Mesh.Scale > 0, "mesh: scale must be positive, got %g", c.Mesh.Scale)
	check(c.Mesh.LoadTimeout >= 0, "mesh: load_timeout must not be negative")
	check(c.Mesh.Anchor >= 0, "mesh: anchor must not be negative, got %d", c.Mesh.Anchor)
	for _, i := range c.Mesh.Wings {
		check(i >= 0, "mesh: wing index %d is negative", i)
	}
	for _, i := range c.Mesh.Highlights {
		check(i >= 0, "mesh: highlight index %d is negative", i)
	}

	check(c.Camera.MinDistance > 0 && c.Camera.MinDistance <= c.Camera.MaxDistance,
		"camera: distance bounds must satisfy 0 < min <= max, got [%g, %g]", c.Camera.MinDistance, c.Camera.MaxDistance)
	check(c.Camera.FovY > 0 && c.Camera.FovY < 180, "camera: fov_y must be in (0, 180), got %g", c.Camera.FovY)
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far,
		"camera: clip planes must satisfy 0 < near < far, got %g/%g", c.Camera.Near, c.Camera.Far)

	check(c.Object.Scale > 0, "object: scale must be positive, got %g", c.Object.Scale)
	check(c.Wing.Speed >= 0, "wing: speed must not be negative, got %g", c.Wing.Speed)

	err = multierr.Append(err, checkColor("lighting.color", c.Lighting.Color))
	check(c.Lighting.Intensity >= 0, "lighting: intensity must not be negative, got %g", c.Lighting.Intensity)
	check(c.Lighting.Shininess > 0, "lighting: shininess must be positive, got %g", c.Lighting.Shininess)

	err = multierr.Append(err, checkColor("texture.color1", c.Texture.Color1))
	err = multierr.Append(err, checkColor("texture.color2", c.Texture.Color2))
	check(c.Texture.Tiling > 0, "texture: tiling must be positive, got %g", c.Texture.Tiling)
	check(c.Texture.Mix >= 0 && c.Texture.Mix <= 1, "texture: mix must be in [0, 1], got %g", c.Texture.Mix)

	check(c.Fan.RingSegments > 0, "fan: ring_segments must be positive, got %d", c.Fan.RingSegments)
	check(c.Fan.BladeCount > 0, "fan: blade_count must be positive, got %d", c.Fan.BladeCount)

	if _, lerr := logger.ParseLevel(c.Logging.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}

	return err
}

func checkColor(field, value string) error {
	if _, err := lighting.ParseHexColor(value); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}
