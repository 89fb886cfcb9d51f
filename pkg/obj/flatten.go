package obj

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlattenedObject holds one object's triangles expanded into parallel
// per-vertex streams. len(Points) == len(Normals) and both are multiples of 3.
// All three vertices of a triangle share the same face normal.
type FlattenedObject struct {
	Name    string
	Points  []mgl32.Vec4
	Normals []mgl32.Vec3
}

// VertexCount returns the number of vertices to draw.
func (o *FlattenedObject) VertexCount() int {
	return len(o.Points)
}

// TriangleCount returns the number of triangles in the object.
func (o *FlattenedObject) TriangleCount() int {
	return len(o.Points) / 3
}

// Flatten expands every group's faces into flat point and normal streams, one
// FlattenedObject per group in parse order. A mesh without "o" lines yields a
// single object named "object0" holding all faces.
func Flatten(d *Data) []FlattenedObject {
	if len(d.Objects) == 0 {
		return []FlattenedObject{flattenFaces("object0", d.Vertices, d.Faces)}
	}

	out := make([]FlattenedObject, 0, len(d.Objects))
	for i := range d.Objects {
		g := &d.Objects[i]
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("object%d", i)
		}
		out = append(out, flattenFaces(name, d.Vertices, g.Faces))
	}
	return out
}

func flattenFaces(name string, vertices []mgl32.Vec4, faces []Face) FlattenedObject {
	o := FlattenedObject{
		Name:    name,
		Points:  make([]mgl32.Vec4, 0, len(faces)*3),
		Normals: make([]mgl32.Vec3, 0, len(faces)*3),
	}

	for _, f := range faces {
		v1 := vertexAt(vertices, f[0])
		v2 := vertexAt(vertices, f[1])
		v3 := vertexAt(vertices, f[2])
		o.Points = append(o.Points, v1, v2, v3)

		// Degenerate triangles produce a NaN normal; it is not corrected here.
		n := v2.Vec3().Sub(v1.Vec3()).Cross(v3.Vec3().Sub(v1.Vec3())).Normalize()
		o.Normals = append(o.Normals, n, n, n)
	}
	return o
}

// vertexAt resolves an index, yielding a NaN position when it is out of range.
func vertexAt(vertices []mgl32.Vec4, idx int) mgl32.Vec4 {
	if idx < 0 || idx >= len(vertices) {
		nan := float32(math.NaN())
		return mgl32.Vec4{nan, nan, nan, 1}
	}
	return vertices[idx]
}

// Scale returns a copy of d with every vertex multiplied component-wise by
// (sx, sy, sz). w stays 1. Faces and groups are shared with d.
func Scale(d *Data, sx, sy, sz float32) *Data {
	scaled := &Data{
		Vertices: make([]mgl32.Vec4, len(d.Vertices)),
		Faces:    d.Faces,
		Objects:  d.Objects,
		Lines:    d.Lines,
	}
	for i, v := range d.Vertices {
		scaled.Vertices[i] = mgl32.Vec4{v[0] * sx, v[1] * sy, v[2] * sz, 1}
	}
	return scaled
}

// Centroid returns the mean position of the object's flattened points.
// Shared vertices are counted once per triangle that uses them.
func Centroid(o *FlattenedObject) mgl32.Vec3 {
	if len(o.Points) == 0 {
		return mgl32.Vec3{}
	}
	var sum mgl32.Vec3
	for _, p := range o.Points {
		sum = sum.Add(p.Vec3())
	}
	return sum.Mul(1 / float32(len(o.Points)))
}

// CentroidOf returns the centroid of objects[i], or the origin when i does not
// name an object.
func CentroidOf(objects []FlattenedObject, i int) mgl32.Vec3 {
	if i < 0 || i >= len(objects) {
		return mgl32.Vec3{}
	}
	return Centroid(&objects[i])
}
