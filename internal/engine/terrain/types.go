// Package terrain turns heightmap images into terrain meshes.
package terrain

// VertexStride is the number of floats per interleaved vertex:
// position (3) followed by texcoord (2).
const VertexStride = 5

// HeightField is a grid of normalized heights in [0, 1].
// Row index is the Z axis, column index is the X axis.
type HeightField struct {
	Width   int
	Height  int
	Heights []float32 // Heights[z*Width+x]
}

// At returns the height sample at column x, row z.
func (hf *HeightField) At(x, z int) float32 {
	return hf.Heights[z*hf.Width+x]
}

// Vertex is a terrain mesh vertex. TexCoord carries (x/width, height) and
// drives height-based colouring in the fragment shader.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Mesh holds terrain geometry ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexData flattens the vertices into an interleaved float buffer.
func (m *Mesh) VertexData() []float32 {
	data := make([]float32, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return data
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
