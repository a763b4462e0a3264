package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// gpuMesh is a VAO with its buffers. count is the number of indices, or
// of vertices for non-indexed geometry.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// newGPUMesh uploads interleaved float vertices. Attribute 0 is the
// position (3 floats); with texCoord set, attribute 1 is a 2-float texcoord
// following it. indices may be nil for non-indexed geometry.
func newGPUMesh(vertices []float32, indices []uint32, stride int, texCoord bool) gpuMesh {
	var m gpuMesh

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}

	strideBytes := int32(stride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, strideBytes, 0)
	gl.EnableVertexAttribArray(0)
	if texCoord {
		gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, strideBytes, 3*4)
		gl.EnableVertexAttribArray(1)
	}

	if indices != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		if len(indices) > 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		}
		m.count = int32(len(indices))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *gpuMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = gpuMesh{}
}
