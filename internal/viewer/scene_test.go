package viewer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/internal/engine/picking"
	"github.com/Faultbox/fanview/pkg/obj"
)

// meshOBJ builds n named single-triangle objects; object i is shifted by i on X.
func meshOBJ(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "o part%d\n", i)
		fmt.Fprintf(&b, "v %d 0 0\nv %d 0 0\nv %d 3 0\n", i, i+3, i)
		fmt.Fprintf(&b, "f %d %d %d\n", i*3+1, i*3+2, i*3+3)
	}
	return b.String()
}

func testObjects(n int) []obj.FlattenedObject {
	return obj.Flatten(obj.ParseString(meshOBJ(n)))
}

func TestNewSceneColors(t *testing.T) {
	opts := DefaultSceneOptions()
	s := NewScene(testObjects(23), opts)

	highlighted := map[int]bool{13: true, 14: true, 15: true, 16: true, 17: true, 19: true, 20: true, 21: true}
	for i, c := range s.Colors {
		want := opts.BaseColor
		if highlighted[i] {
			want = opts.HighlightColor
		}
		if c != want {
			t.Errorf("object %d: color %v, want %v", i, c, want)
		}
	}
}

func TestNewSceneWings(t *testing.T) {
	s := NewScene(testObjects(23), DefaultSceneOptions())

	for i, w := range s.Wing {
		want := i == 19 || i == 20 || i == 21
		if w != want {
			t.Errorf("object %d: wing=%v, want %v", i, w, want)
		}
	}

	// Object 18 spans x in [18, 21], y in [0, 3].
	want := mgl32.Vec3{19, 1, 0}
	if !s.WingCenter.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("wing center: got %v, want %v", s.WingCenter, want)
	}
}

func TestNewSceneMissingAnchor(t *testing.T) {
	s := NewScene(testObjects(3), DefaultSceneOptions())

	if s.WingCenter != (mgl32.Vec3{}) {
		t.Errorf("expected zero center without anchor object, got %v", s.WingCenter)
	}
	for i, w := range s.Wing {
		if w {
			t.Errorf("object %d marked as wing in a 3 object mesh", i)
		}
	}
}

func TestNewScenePickColors(t *testing.T) {
	s := NewScene(testObjects(5), DefaultSceneOptions())
	for i, c := range s.PickColors {
		if c != picking.Color(i) {
			t.Errorf("object %d: pick color %v, want %v", i, c, picking.Color(i))
		}
	}
	if s.VertexCount() != 15 {
		t.Errorf("expected 15 vertices, got %d", s.VertexCount())
	}
}

func TestPickLabel(t *testing.T) {
	s := NewScene(testObjects(2), DefaultSceneOptions())
	s.Objects[1].Name = ""

	tests := []struct {
		index int
		want  string
	}{
		{0, "Object 0: part0"},
		{1, "Object 1: object1"},
		{-1, "No object under cursor"},
		{2, "No object under cursor"},
	}
	for _, tt := range tests {
		if got := s.PickLabel(tt.index); got != tt.want {
			t.Errorf("PickLabel(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestCursorMayHit(t *testing.T) {
	tri := obj.FlattenedObject{
		Name:    "tri",
		Points:  []mgl32.Vec4{{-1, -1, 0, 1}, {1, -1, 0, 1}, {0, 1, 0, 1}},
		Normals: []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
	}
	s := NewScene([]obj.FlattenedObject{tri}, DefaultSceneOptions())

	f := Frame{
		Projection: mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100),
		View:       mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Draws:      []DrawCall{{Object: 0, Model: mgl32.Ident4(), Count: 3}},
	}

	if !s.CursorMayHit(f, 50, 50, 100, 100) {
		t.Error("center of the window should reach the triangle")
	}
	if s.CursorMayHit(f, 2, 2, 100, 100) {
		t.Error("corner ray should miss")
	}

	// Moving the object under the corner ray makes it reachable.
	f.Draws[0].Model = mgl32.Translate3D(-4, 4, 0)
	if !s.CursorMayHit(f, 2, 2, 100, 100) {
		t.Error("translated object should be hit from the corner")
	}
	if s.CursorMayHit(f, 50, 50, 0, 0) {
		t.Error("degenerate viewport should never hit")
	}
}
