// Package lighting holds the single point light and Phong material factors
// the viewer shades with.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// PointLight is a world-space point light.
type PointLight struct {
	Enabled   bool
	Position  mgl32.Vec3
	Color     mgl32.Vec3 // 0-1 per channel
	Intensity float32
}

// DefaultPointLight returns a white light above and in front of the scene.
func DefaultPointLight() PointLight {
	return PointLight{
		Enabled:   true,
		Position:  mgl32.Vec3{50, 200, 100},
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1,
	}
}

// SetColor stores c with every channel clamped to [0, 1].
func (l *PointLight) SetColor(c mgl32.Vec3) {
	l.Color = ClampColor(c)
}

// SetIntensity stores a non-negative intensity.
func (l *PointLight) SetIntensity(v float32) {
	l.Intensity = max(v, 0)
}

// Material holds the Phong reflection factors shared by every object.
type Material struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

// DefaultMaterial returns a mildly glossy material.
func DefaultMaterial() Material {
	return Material{
		Ambient:   0.2,
		Diffuse:   1.0,
		Specular:  0.5,
		Shininess: 32,
	}
}
