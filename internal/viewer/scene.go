package viewer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fanview/internal/engine/picking"
	"github.com/Faultbox/fanview/pkg/obj"
)

// SceneOptions selects how a loaded mesh is colored and which parts swing.
type SceneOptions struct {
	Scale          float32
	Anchor         int   // object whose centroid is the wing pivot
	Wings          []int // objects rotated about the pivot
	Highlights     []int // objects drawn in HighlightColor
	HighlightColor mgl32.Vec3
	BaseColor      mgl32.Vec3
}

// DefaultSceneOptions matches the bundled fan.obj layout.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Scale:          0.1,
		Anchor:         18,
		Wings:          []int{19, 20, 21},
		Highlights:     []int{13, 14, 15, 16, 17, 19, 20, 21},
		HighlightColor: mgl32.Vec3{0.6, 0.8, 1.0},
		BaseColor:      mgl32.Vec3{0.95, 0.95, 0.95},
	}
}

// Scene is an immutable flattened mesh with its per-object attributes.
// It is rebuilt wholesale when the source mesh changes.
type Scene struct {
	Objects    []obj.FlattenedObject
	Colors     []mgl32.Vec3
	PickColors []mgl32.Vec3
	Wing       []bool
	WingCenter mgl32.Vec3

	bounds []objectBounds
}

type objectBounds struct {
	box picking.AABB
	ok  bool
}

// NewScene derives colors, pick colors and the wing pivot for objects.
func NewScene(objects []obj.FlattenedObject, opts SceneOptions) *Scene {
	n := len(objects)
	s := &Scene{
		Objects:    objects,
		Colors:     make([]mgl32.Vec3, n),
		PickColors: picking.Colors(n),
		Wing:       make([]bool, n),
		WingCenter: obj.CentroidOf(objects, opts.Anchor),
	}

	highlight := make([]bool, n)
	for _, i := range opts.Highlights {
		if i >= 0 && i < n {
			highlight[i] = true
		}
	}
	for i := range s.Colors {
		if highlight[i] {
			s.Colors[i] = opts.HighlightColor
		} else {
			s.Colors[i] = opts.BaseColor
		}
	}
	for _, i := range opts.Wings {
		if i >= 0 && i < n {
			s.Wing[i] = true
		}
	}
	s.bounds = make([]objectBounds, n)
	for i := range objects {
		s.bounds[i].box, s.bounds[i].ok = picking.BoundsOf(objects[i].Points)
	}
	return s
}

// CursorMayHit reports whether the ray under the window position (x, y),
// origin top-left, touches the world bounds of any drawn object. A false
// result means a pick there is certain to miss.
func (s *Scene) CursorMayHit(f Frame, x, y, width, height float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	ray := picking.ScreenToRay(x, y, width, height, f.Projection.Mul4(f.View).Inv())
	for _, d := range f.Draws {
		if d.Object < 0 || d.Object >= len(s.bounds) || !s.bounds[d.Object].ok {
			continue
		}
		if _, hit := ray.IntersectAABB(s.bounds[d.Object].box.Transform(d.Model)); hit {
			return true
		}
	}
	return false
}

// Len returns the object count.
func (s *Scene) Len() int {
	return len(s.Objects)
}

// VertexCount sums the vertices of every object. Zero means nothing to draw.
func (s *Scene) VertexCount() int {
	total := 0
	for i := range s.Objects {
		total += s.Objects[i].VertexCount()
	}
	return total
}

// Name returns the display name of object i.
func (s *Scene) Name(i int) string {
	if i < 0 || i >= len(s.Objects) {
		return ""
	}
	return s.Objects[i].Name
}

// PickLabel formats a pick result for display.
func (s *Scene) PickLabel(index int) string {
	if index < 0 || index >= s.Len() {
		return "No object under cursor"
	}
	name := s.Name(index)
	if name == "" {
		name = fmt.Sprintf("object%d", index)
	}
	return fmt.Sprintf("Object %d: %s", index, name)
}
