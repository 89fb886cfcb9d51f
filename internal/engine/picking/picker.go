package picking

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/fanview/internal/engine/framebuffer"
	"github.com/Faultbox/fanview/internal/engine/shader"
	"github.com/Faultbox/fanview/internal/logger"
	"github.com/Faultbox/fanview/internal/shaders"
)

// ErrFramebufferIncomplete marks a pick target the driver refused.
var ErrFramebufferIncomplete = framebuffer.ErrIncomplete

// Target is one pickable object: a vertex array with positions at
// attribute 0 and the model matrix the visible frame draws it with.
type Target struct {
	VAO   uint32
	Count int32
	Model mgl32.Mat4
}

// Picker renders targets in id colors to an offscreen buffer and reads
// back a single pixel.
type Picker struct {
	fb       *framebuffer.Framebuffer
	uniforms *shader.Uniforms
	colors   []mgl32.Vec3
	log      *zap.Logger
}

// New compiles the pick program and allocates a nearest-filtered target.
// An incomplete target is not an error: it is logged and Pick always misses.
func New(width, height int32) (*Picker, error) {
	program, err := shader.CompileProgram(shaders.PickVertexShader, shaders.PickFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("pick program: %w", err)
	}

	p := &Picker{
		uniforms: shader.Resolve(program, shaders.PickUniforms...),
		log:      logger.Named("picking"),
	}

	fb, err := framebuffer.New(width, height, framebuffer.WithNearestFilter())
	if err != nil {
		p.log.Warn("pick framebuffer unavailable, picking disabled", zap.Error(err))
		return p, nil
	}
	p.fb = fb
	return p, nil
}

// Enabled reports whether the offscreen target exists.
func (p *Picker) Enabled() bool {
	return p.fb != nil
}

// Resize matches the offscreen target to the drawable size.
func (p *Picker) Resize(width, height int32) {
	if p.fb != nil {
		p.fb.Resize(width, height)
	}
}

// Pick draws every target with its id color and decodes the pixel at (x, y)
// in framebuffer space (origin bottom-left). The previously bound framebuffer,
// viewport, clear color and program are restored before returning.
func (p *Picker) Pick(x, y int32, projection, view mgl32.Mat4, targets []Target) int {
	if p.fb == nil {
		return NoObject
	}
	if len(p.colors) != len(targets) {
		p.colors = Colors(len(targets))
	}

	var prevProgram int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &prevProgram)
	defer gl.UseProgram(uint32(prevProgram))

	restore := p.fb.BindWithViewport()
	defer restore()

	p.fb.Clear(0, 0, 0, 0)
	gl.Enable(gl.DEPTH_TEST)

	p.uniforms.Use()
	p.uniforms.SetMat4(shaders.UProjection, projection)
	p.uniforms.SetMat4(shaders.UView, view)

	for i, t := range targets {
		if t.Count <= 0 {
			continue
		}
		p.uniforms.SetMat4(shaders.UModel, t.Model)
		p.uniforms.SetVec3(shaders.UPickColor, p.colors[i])
		gl.BindVertexArray(t.VAO)
		gl.DrawArrays(gl.TRIANGLES, 0, t.Count)
	}
	gl.BindVertexArray(0)

	px := p.fb.ReadPixel(x, y)
	return Index(px[0], px[1], px[2])
}

// ReadPixels returns the last pick image, bottom row first.
func (p *Picker) ReadPixels() (pixels []byte, width, height int32) {
	if p.fb == nil {
		return nil, 0, 0
	}
	width, height = p.fb.Size()
	return p.fb.ReadPixels(), width, height
}

// Destroy releases the program and the offscreen target.
func (p *Picker) Destroy() {
	if p.fb != nil {
		p.fb.Destroy()
		p.fb = nil
	}
	if prog := p.uniforms.Program(); prog != 0 {
		gl.DeleteProgram(prog)
	}
}
