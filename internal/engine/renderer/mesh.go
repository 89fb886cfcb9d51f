package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/fanview/pkg/obj"
)

// Mesh is one flattened object on the GPU: vec4 positions at attribute 0
// and vec3 normals at attribute 1, drawn as plain triangles.
type Mesh struct {
	VAO   uint32
	vbos  [2]uint32
	Count int32
}

// UploadMesh copies an object's point and normal streams to the GPU.
// An object without triangles gets an empty mesh that draws nothing.
func UploadMesh(o *obj.FlattenedObject) *Mesh {
	m := &Mesh{Count: int32(o.VertexCount())}
	if m.Count == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)
	gl.GenBuffers(2, &m.vbos[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(o.Points)*4*4, gl.Ptr(o.Points), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(o.Normals)*3*4, gl.Ptr(o.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Draw issues the triangle draw for the bound program.
func (m *Mesh) Draw() {
	if m.Count == 0 {
		return
	}
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
}

// Destroy releases the vertex array and its buffers.
func (m *Mesh) Destroy() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		gl.DeleteBuffers(2, &m.vbos[0])
		m.VAO = 0
	}
}
