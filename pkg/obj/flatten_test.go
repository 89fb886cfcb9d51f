package obj

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const twoQuadsNoGroups = `v 0 0 0
v 2 0 0
v 2 2 0
v 0 2 0
f 1 2 3
f 1 3 4
`

func TestFlattenWithoutGroups(t *testing.T) {
	objects := Flatten(ParseString(twoQuadsNoGroups))

	if len(objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(objects))
	}
	if objects[0].Name != "object0" {
		t.Errorf("expected name 'object0', got %q", objects[0].Name)
	}
	if len(objects[0].Points) != 6 {
		t.Errorf("expected 6 points, got %d", len(objects[0].Points))
	}
}

func TestFlattenSizeInvariant(t *testing.T) {
	text := `o a
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 2 4
f 2 3 4
o b
v 5 5 5
v 6 5 5
v 5 6 5
f 5 6 7
o c
`
	d := ParseString(text)
	objects := Flatten(d)

	if len(objects) != len(d.Objects) {
		t.Fatalf("expected %d objects, got %d", len(d.Objects), len(objects))
	}
	for i, o := range objects {
		faces := len(d.Objects[i].Faces)
		if len(o.Points) != 3*faces {
			t.Errorf("%s: expected %d points, got %d", o.Name, 3*faces, len(o.Points))
		}
		if len(o.Normals) != len(o.Points) {
			t.Errorf("%s: points/normals mismatch %d != %d", o.Name, len(o.Points), len(o.Normals))
		}
		if o.TriangleCount() != faces {
			t.Errorf("%s: expected %d triangles, got %d", o.Name, faces, o.TriangleCount())
		}
	}
}

func TestFlattenNormalsAreFlat(t *testing.T) {
	text := `o wedge
v 0 0 0
v 3 0 1
v 1 2 0
v -1 1 4
f 1 2 3
f 1 3 4
f 2 4 3
`
	o := Flatten(ParseString(text))[0]

	for tri := 0; tri < o.TriangleCount(); tri++ {
		n := o.Normals[tri*3]
		if o.Normals[tri*3+1] != n || o.Normals[tri*3+2] != n {
			t.Errorf("triangle %d: normals differ: %v", tri, o.Normals[tri*3:tri*3+3])
		}
		if l := n.Len(); math.Abs(float64(l-1)) > 1e-5 {
			t.Errorf("triangle %d: expected unit normal, length %f", tri, l)
		}
	}
}

func TestFlattenNameFallback(t *testing.T) {
	text := "o\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\no named\nf 1 2 3\n"
	objects := Flatten(ParseString(text))

	if objects[0].Name != "object0" {
		t.Errorf("expected fallback name 'object0', got %q", objects[0].Name)
	}
	if objects[1].Name != "named" {
		t.Errorf("expected name 'named', got %q", objects[1].Name)
	}
}

func TestFlattenOutOfRangeIndexYieldsNaN(t *testing.T) {
	o := Flatten(ParseString("v 0 0 0\nv 1 0 0\nf 1 2 9\n"))[0]

	if len(o.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(o.Points))
	}
	if !math.IsNaN(float64(o.Points[2][0])) {
		t.Errorf("expected NaN point for missing vertex, got %v", o.Points[2])
	}
	if o.Points[2][3] != 1 {
		t.Errorf("expected w=1 on NaN point, got %f", o.Points[2][3])
	}
	if !math.IsNaN(float64(o.Normals[0][0])) {
		t.Errorf("expected NaN normal, got %v", o.Normals[0])
	}
}

func TestScaleRoundTrip(t *testing.T) {
	d := ParseString(`v 1.5 -2.25 3
v 0.1 0.2 0.3
v -7 8 -9.75
`)
	back := Scale(Scale(d, 2, 2, 2), 0.5, 0.5, 0.5)

	for i := range d.Vertices {
		if !back.Vertices[i].ApproxEqualThreshold(d.Vertices[i], 1e-6) {
			t.Errorf("vertex %d: got %v, want %v", i, back.Vertices[i], d.Vertices[i])
		}
	}
}

func TestScaleIndependentAxes(t *testing.T) {
	d := ParseString("o a\nv 1 1 1\n")
	s := Scale(d, 2, 3, 4)

	if s.Vertices[0] != (mgl32.Vec4{2, 3, 4, 1}) {
		t.Errorf("expected (2,3,4,1), got %v", s.Vertices[0])
	}
	if d.Vertices[0] != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("source mesh was modified: %v", d.Vertices[0])
	}
	if len(s.Objects) != 1 || s.Objects[0].Name != "a" {
		t.Errorf("expected groups to carry over, got %+v", s.Objects)
	}
}

func TestCentroid(t *testing.T) {
	objects := Flatten(ParseString(twoQuadsNoGroups))

	got := CentroidOf(objects, 0)
	want := mgl32.Vec3{1, 1, 0}
	if !got.ApproxEqual(want) {
		t.Errorf("centroid: got %v, want %v", got, want)
	}

	if c := CentroidOf(objects, 5); c != (mgl32.Vec3{}) {
		t.Errorf("expected origin for missing object, got %v", c)
	}
	if c := Centroid(&FlattenedObject{}); c != (mgl32.Vec3{}) {
		t.Errorf("expected origin for empty object, got %v", c)
	}
}
