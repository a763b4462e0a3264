// Package marker defines the hiker marker geometry and placement.
package marker

import "github.com/go-gl/mathgl/mgl32"

// Mesh is position-only indexed geometry.
type Mesh struct {
	Vertices []float32 // x, y, z triples
	Indices  []uint32
}

// Pyramid returns a square-based pyramid, base on y=0 spanning [-1, 1] in
// X and Z, apex at (0, 2, 0).
func Pyramid() Mesh {
	return Mesh{
		Vertices: []float32{
			// Base
			-1, 0, -1,
			1, 0, -1,
			1, 0, 1,
			-1, 0, 1,
			// Apex
			0, 2, 0,
		},
		Indices: []uint32{
			// Base
			0, 1, 2,
			0, 2, 3,
			// Sides
			0, 4, 1,
			1, 4, 2,
			2, 4, 3,
			3, 4, 0,
		},
	}
}

// Transform places the marker at pos, uniformly scaled: translate then scale.
func Transform(pos mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(scale, scale, scale))
}
