package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestPositionFromSphericalParams(t *testing.T) {
	tests := []struct {
		name       string
		rotX, rotY float32
		want       mgl32.Vec3
	}{
		{"front", 0, 0, mgl32.Vec3{0, 10, 100}},
		{"right", 0, math32.Pi / 2, mgl32.Vec3{100, 10, 0}},
		{"above", math32.Pi / 2, 0, mgl32.Vec3{0, 110, 0}},
		{"behind", 0, math32.Pi, mgl32.Vec3{0, 10, -100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.RotationX, c.RotationY = tt.rotX, tt.rotY
			if got := c.Position(); !got.ApproxEqualThreshold(tt.want, 1e-3) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewMatrixMapsTargetAhead(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX, c.RotationY = 0.3, 1.1

	target := c.ViewMatrix().Mul4x1(c.Target.Vec4(1))
	// Target lies straight down the -Z eye axis at the orbit distance.
	want := mgl32.Vec4{0, 0, -c.Distance, 1}
	if !target.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("target in eye space: got %v, want %v", target, want)
	}
}

func TestHandleDrag(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(10, 20)

	if !mgl32.FloatEqualThreshold(c.RotationY, 0.1, 1e-6) {
		t.Errorf("yaw: got %f, want 0.1", c.RotationY)
	}
	if !mgl32.FloatEqualThreshold(c.RotationX, 0.2, 1e-6) {
		t.Errorf("pitch: got %f, want 0.2", c.RotationX)
	}

	c.HandleDrag(0, 10000)
	if c.RotationX != math32.Pi/2 {
		t.Errorf("pitch not clamped high: %f", c.RotationX)
	}
	c.HandleDrag(0, -20000)
	if c.RotationX != -math32.Pi/2 {
		t.Errorf("pitch not clamped low: %f", c.RotationX)
	}
}

func TestHandleZoom(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		delta float32
		want  float32
	}{
		{"out", 100, 100, 110},
		{"in", 100, -100, 90},
		{"clamp min", 55, -1000, 50},
		{"clamp max", 480, 1000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Distance = tt.start
			c.HandleZoom(tt.delta)
			if !mgl32.FloatEqualThreshold(c.Distance, tt.want, 1e-4) {
				t.Errorf("got %f, want %f", c.Distance, tt.want)
			}
		})
	}
}

func TestSetRotationDegrees(t *testing.T) {
	c := NewOrbitCamera()
	c.SetRotationDegrees(45, -30)

	pitch, yaw := c.RotationDegrees()
	if !mgl32.FloatEqualThreshold(pitch, 45, 1e-4) || !mgl32.FloatEqualThreshold(yaw, -30, 1e-4) {
		t.Errorf("got pitch %f yaw %f", pitch, yaw)
	}

	c.SetRotationDegrees(120, 0)
	if c.RotationX != math32.Pi/2 {
		t.Errorf("expected clamped pitch, got %f", c.RotationX)
	}
}

func TestProjection(t *testing.T) {
	p := Perspective{FovY: 45, Near: 0.1, Far: 1000}
	if got, want := p.Matrix(0), p.Matrix(1); got != want {
		t.Error("zero aspect should fall back to 1")
	}

	o := Ortho{Left: -6, Right: 6, Bottom: -10, Top: 6, Near: -6, Far: 6}
	corner := o.Matrix(2).Mul4x1(mgl32.Vec4{6, 6, 0, 1})
	if !corner.ApproxEqualThreshold(mgl32.Vec4{1, 1, 0, 1}, 1e-5) {
		t.Errorf("ortho corner: got %v", corner)
	}
}
