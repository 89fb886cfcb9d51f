package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective is a symmetric perspective projection.
type Perspective struct {
	FovY float32 // degrees
	Near float32
	Far  float32
}

// Matrix returns the projection for a viewport aspect ratio.
func (p Perspective) Matrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(p.FovY), aspect, p.Near, p.Far)
}

// Ortho is a fixed orthographic volume. It ignores the aspect ratio.
type Ortho struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// Matrix returns the orthographic projection.
func (o Ortho) Matrix(float32) mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// Projection produces a projection matrix for a viewport aspect ratio.
type Projection interface {
	Matrix(aspect float32) mgl32.Mat4
}
