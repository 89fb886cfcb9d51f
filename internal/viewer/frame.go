package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/internal/engine/lighting"
)

// DrawCall is one object's draw with every per-object value resolved.
type DrawCall struct {
	Object int
	Model  mgl32.Mat4
	Normal mgl32.Mat3 // inverse transpose of the upper 3x3 of view * model
	Color  mgl32.Vec3
	Count  int32
}

// Frame is everything a backend needs to draw one image.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Eye        mgl32.Vec3
	Light      lighting.PointLight
	Material   lighting.Material
	Texture    TextureParams
	Draws      []DrawCall
}

// Composer builds frames from the live state and a loaded scene. The Draws
// slice of a returned Frame is reused by the next Compose.
type Composer struct {
	draws []DrawCall
}

// Compose resolves camera, base model and wing pivot for every object.
// It does not advance the wing animation.
func (c *Composer) Compose(state *SceneState, scene *Scene, aspect float32) Frame {
	f := Frame{
		Projection: state.Projection.Matrix(aspect),
		View:       state.Camera.ViewMatrix(),
		Eye:        state.Camera.Position(),
		Light:      state.Light,
		Material:   state.Material,
		Texture:    state.Texture,
	}
	if scene == nil {
		return f
	}

	c.draws = c.draws[:0]
	base := state.Object.Matrix()
	wing := base.Mul4(state.Wing.Pivot(scene.WingCenter))

	for i := range scene.Objects {
		model := base
		if scene.Wing[i] {
			model = wing
		}
		c.draws = append(c.draws, DrawCall{
			Object: i,
			Model:  model,
			Normal: mgl32.Mat4Normal(f.View.Mul4(model)),
			Color:  scene.Colors[i],
			Count:  int32(scene.Objects[i].VertexCount()),
		})
	}
	f.Draws = c.draws
	return f
}
