// Package renderer draws composed viewer frames and fan cubes with OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/engine/lighting"
	"github.com/Faultbox/fanview/internal/engine/picking"
	"github.com/Faultbox/fanview/internal/engine/shader"
	"github.com/Faultbox/fanview/internal/engine/texture"
	"github.com/Faultbox/fanview/internal/fan"
	"github.com/Faultbox/fanview/internal/logger"
	"github.com/Faultbox/fanview/internal/shaders"
	"github.com/Faultbox/fanview/internal/viewer"
)

// imageUnit is the texture unit the optional surface image is bound to.
const imageUnit = 0

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config   Config
	uniforms *shader.Uniforms
	log      *zap.Logger

	meshes []*Mesh
	cube   *Mesh
	image  *texture.Texture
}

// New initializes OpenGL and compiles the Phong program.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.resetClearColor()

	program, err := shader.CompileProgram(shaders.PhongVertexShader, shaders.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong program: %w", err)
	}
	r.uniforms = shader.Resolve(program, shaders.PhongUniforms...)
	if missing := r.uniforms.Missing(); len(missing) > 0 {
		// The driver drops uniforms the shader never reads.
		r.log.Debug("inactive uniforms", zap.Strings("names", missing))
	}

	cube := fan.Cube()
	r.cube = UploadMesh(&cube)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// Close releases every GPU resource and reports any pending GL error.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")
	r.ClearScene()
	if r.cube != nil {
		r.cube.Destroy()
	}
	r.image.Destroy()
	r.image = nil
	if r.uniforms != nil {
		gl.DeleteProgram(r.uniforms.Program())
	}
	return glErrors("renderer teardown")
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height, or 1 for a degenerate size.
func (r *Renderer) Aspect() float32 {
	if r.config.Height <= 0 || r.config.Width <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.resetClearColor()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// glClearColor is replaced in tests that run without a context.
var glClearColor = gl.ClearColor

// resetClearColor reapplies the configured background. Offscreen passes
// clear with their own color.
func (r *Renderer) resetClearColor() {
	c := r.config.ClearColor
	glClearColor(c[0], c[1], c[2], 1)
}

// SetScene uploads one mesh per scene object, replacing any previous scene.
func (r *Renderer) SetScene(scene *viewer.Scene) {
	r.ClearScene()
	r.meshes = make([]*Mesh, scene.Len())
	for i := range scene.Objects {
		r.meshes[i] = UploadMesh(&scene.Objects[i])
	}
	r.log.Info("scene uploaded",
		zap.Int("objects", scene.Len()),
		zap.Int("vertices", scene.VertexCount()),
	)
}

// ClearScene releases the uploaded scene meshes.
func (r *Renderer) ClearScene() {
	for _, m := range r.meshes {
		m.Destroy()
	}
	r.meshes = nil
}

// SetImage uploads img as the surface texture, replacing any previous one.
func (r *Renderer) SetImage(img *image.RGBA) error {
	tex, err := texture.Upload(img)
	if err != nil {
		return err
	}
	r.image.Destroy()
	r.image = tex
	r.log.Info("surface image uploaded", zap.Int32("width", tex.Width), zap.Int32("height", tex.Height))
	return nil
}

// HasImage reports whether a surface image is uploaded.
func (r *Renderer) HasImage() bool {
	return r.image != nil
}

// DrawFrame draws every call of a composed frame.
func (r *Renderer) DrawFrame(f viewer.Frame) {
	useImage := f.Texture.UseImage && r.image != nil
	r.setCommon(f.Projection, f.View, f.Light, f.Material, f.Texture, useImage)

	for _, d := range f.Draws {
		if d.Object < 0 || d.Object >= len(r.meshes) {
			continue
		}
		r.uniforms.SetMat4(shaders.UModel, d.Model)
		r.uniforms.SetMat3(shaders.UNormalMatrix, d.Normal)
		r.uniforms.SetVec3(shaders.UColor, d.Color)
		r.meshes[d.Object].Draw()
	}
	gl.BindVertexArray(0)
}

// PickTargets pairs the frame's model matrices with the uploaded meshes.
func (r *Renderer) PickTargets(f viewer.Frame, dst []picking.Target) []picking.Target {
	dst = dst[:0]
	for _, d := range f.Draws {
		t := picking.Target{Model: d.Model}
		if d.Object >= 0 && d.Object < len(r.meshes) {
			t.VAO = r.meshes[d.Object].VAO
			t.Count = r.meshes[d.Object].Count
		}
		dst = append(dst, t)
	}
	return dst
}

// DrawCubes draws recorded fan instances with the unit cube, tinted per part.
func (r *Renderer) DrawCubes(projection, view mgl32.Mat4, light lighting.PointLight, m lighting.Material, list *fan.DrawList) {
	r.setCommon(projection, view, light, m, viewer.TextureParams{}, false)

	for _, inst := range list.Instances {
		r.uniforms.SetMat4(shaders.UModel, inst.Instance)
		r.uniforms.SetMat3(shaders.UNormalMatrix, mgl32.Mat4Normal(view.Mul4(inst.Instance)))
		r.uniforms.SetVec3(shaders.UColor, fan.PartColor(inst.Part))
		r.cube.Draw()
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) setCommon(projection, view mgl32.Mat4, light lighting.PointLight, m lighting.Material, tex viewer.TextureParams, useImage bool) {
	u := r.uniforms
	u.Use()
	u.SetMat4(shaders.UProjection, projection)
	u.SetMat4(shaders.UView, view)

	u.SetBool(shaders.ULightEnabled, light.Enabled)
	u.SetVec3(shaders.ULightPos, light.Position)
	u.SetVec3(shaders.ULightColor, light.Color)
	u.SetFloat(shaders.ULightIntensity, light.Intensity)
	u.SetFloat(shaders.UAmbient, m.Ambient)
	u.SetFloat(shaders.UDiffuse, m.Diffuse)
	u.SetFloat(shaders.USpecular, m.Specular)
	u.SetFloat(shaders.UShininess, m.Shininess)

	u.SetBool(shaders.UUseTexture, tex.Enabled)
	u.SetVec3(shaders.UTexColor1, tex.Color1)
	u.SetVec3(shaders.UTexColor2, tex.Color2)
	u.SetFloat(shaders.UTexTiling, tex.Tiling)
	u.SetFloat(shaders.UTexMix, tex.Mix)
	u.SetBool(shaders.UUseImage, useImage)
	if useImage {
		r.image.Bind(imageUnit)
		u.SetInt(shaders.UImage, imageUnit)
	}
}

// glErrors drains the GL error queue into one error.
func glErrors(op string) error {
	var err error
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		err = multierr.Append(err, fmt.Errorf("%s: GL error 0x%x", op, code))
	}
	return err
}
