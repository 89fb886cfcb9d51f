package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/internal/config"
	"github.com/Faultbox/fanview/internal/engine/camera"
	"github.com/Faultbox/fanview/internal/engine/lighting"
	"github.com/Faultbox/fanview/internal/fan"
	"github.com/Faultbox/fanview/internal/viewer"
)

// AppConfig derives window settings from the loaded configuration.
func AppConfig(cfg *config.Config, title string) (Config, error) {
	clearColor, err := lighting.ParseHexColor(cfg.Graphics.ClearColor)
	if err != nil {
		return Config{}, fmt.Errorf("graphics.clear_color: %w", err)
	}
	return Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		ClearColor: clearColor,
	}, nil
}

func sceneOptions(m config.MeshConfig) viewer.SceneOptions {
	return viewer.SceneOptions{
		Scale:          m.Scale,
		Anchor:         m.Anchor,
		Wings:          append([]int(nil), m.Wings...),
		Highlights:     append([]int(nil), m.Highlights...),
		HighlightColor: mgl32.Vec3(m.HighlightColor),
		BaseColor:      mgl32.Vec3(m.BaseColor),
	}
}

func sceneState(cfg *config.Config) (*viewer.SceneState, error) {
	s := viewer.NewSceneState()

	c := cfg.Camera
	s.Camera = &camera.OrbitCamera{
		Target:          mgl32.Vec3(c.Target),
		MinDistance:     c.MinDistance,
		MaxDistance:     c.MaxDistance,
		MinPitch:        s.Camera.MinPitch,
		MaxPitch:        s.Camera.MaxPitch,
		DragSensitivity: c.DragSensitivity,
		ZoomSensitivity: c.ZoomSensitivity,
	}
	s.Camera.SetDistance(c.Distance)
	s.Camera.SetRotationDegrees(c.RotationX, c.RotationY)
	s.Projection = camera.Perspective{FovY: c.FovY, Near: c.Near, Far: c.Far}

	o := cfg.Object
	s.Object = viewer.ObjectTransform{
		Translate: mgl32.Vec3(o.Translate),
		RotateX:   o.RotateX,
		RotateY:   o.RotateY,
		RotateZ:   o.RotateZ,
		Scale:     o.Scale,
	}

	s.Home = viewer.HomeView{
		Object:   s.Object,
		Pitch:    c.RotationX,
		Yaw:      c.RotationY,
		Distance: c.Distance,
	}

	// The frame clock is not running yet; the first Advance stamps it.
	s.Wing.Speed = cfg.Wing.Speed
	s.Wing.Angle = cfg.Wing.Angle
	s.Wing.Animate = cfg.Wing.Animate

	l := cfg.Lighting
	color, err := lighting.ParseHexColor(l.Color)
	if err != nil {
		return nil, fmt.Errorf("lighting.color: %w", err)
	}
	s.Light.Enabled = l.Enabled
	s.Light.Position = mgl32.Vec3(l.Position)
	s.Light.SetColor(color)
	s.Light.SetIntensity(l.Intensity)
	s.Material = lighting.Material{
		Ambient:   l.Ambient,
		Diffuse:   l.Diffuse,
		Specular:  l.Specular,
		Shininess: l.Shininess,
	}

	t := cfg.Texture
	if s.Texture.Color1, err = lighting.ParseHexColor(t.Color1); err != nil {
		return nil, fmt.Errorf("texture.color1: %w", err)
	}
	if s.Texture.Color2, err = lighting.ParseHexColor(t.Color2); err != nil {
		return nil, fmt.Errorf("texture.color2: %w", err)
	}
	s.Texture.Enabled = t.Enabled
	s.Texture.Tiling = t.Tiling
	s.Texture.Mix = t.Mix
	s.Texture.UseImage = t.Image != ""

	s.Debug.Pick = cfg.Debug.Pick
	return s, nil
}

// storeState writes the live view back into cfg so Save persists it.
func storeState(cfg *config.Config, s *viewer.SceneState) {
	pitch, yaw := s.Camera.RotationDegrees()
	cfg.Camera.RotationX = pitch
	cfg.Camera.RotationY = yaw
	cfg.Camera.Distance = s.Camera.Distance
	cfg.Camera.Target = s.Camera.Target

	cfg.Object = config.ObjectConfig{
		Translate: s.Object.Translate,
		RotateX:   s.Object.RotateX,
		RotateY:   s.Object.RotateY,
		RotateZ:   s.Object.RotateZ,
		Scale:     s.Object.Scale,
	}

	cfg.Wing.Animate = s.Wing.Animate
	cfg.Wing.Speed = s.Wing.Speed
	cfg.Wing.Angle = s.Wing.Angle

	cfg.Lighting.Enabled = s.Light.Enabled
	cfg.Lighting.Color = lighting.HexColor(s.Light.Color)
	cfg.Lighting.Position = s.Light.Position
	cfg.Lighting.Intensity = s.Light.Intensity
	cfg.Lighting.Ambient = s.Material.Ambient
	cfg.Lighting.Diffuse = s.Material.Diffuse
	cfg.Lighting.Specular = s.Material.Specular
	cfg.Lighting.Shininess = s.Material.Shininess

	cfg.Texture.Enabled = s.Texture.Enabled
	cfg.Texture.Color1 = lighting.HexColor(s.Texture.Color1)
	cfg.Texture.Color2 = lighting.HexColor(s.Texture.Color2)
	cfg.Texture.Tiling = s.Texture.Tiling
	cfg.Texture.Mix = s.Texture.Mix

	cfg.Debug.Pick = s.Debug.Pick
}

func fanDimensions(f config.FanConfig) fan.Dimensions {
	d := fan.DefaultDimensions()
	if f.RingSegments > 0 {
		d.RingSegments = f.RingSegments
	}
	if f.BladeCount > 0 {
		d.BladeCount = f.BladeCount
	}
	return d
}
