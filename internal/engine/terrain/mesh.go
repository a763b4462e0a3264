package terrain

// BuildMesh creates a centered terrain mesh from a height field.
// scaleY multiplies heights, scaleXZ sets the grid spacing.
//
// Every grid cell becomes one vertex; every interior quad becomes two
// triangles (topLeft, bottomLeft, topRight) and (topRight, bottomLeft,
// bottomRight), so all triangles share one winding. A field narrower than
// two samples in either direction yields vertices but no indices.
func BuildMesh(hf *HeightField, scaleY, scaleXZ float32) *Mesh {
	width, height := hf.Width, hf.Height
	if width < 0 || height < 0 {
		width, height = 0, 0
	}

	halfW := float32(width) / 2.0
	halfH := float32(height) / 2.0

	vertices := make([]Vertex, 0, width*height)
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for z := range height {
		for x := range width {
			h := hf.Heights[z*width+x]

			pos := [3]float32{
				(float32(x) - halfW) * scaleXZ,
				h * scaleY,
				(float32(z) - halfH) * scaleXZ,
			}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				TexCoord: [2]float32{float32(x) / float32(width), h},
			})
		}
	}

	if len(vertices) == 0 {
		bounds = Bounds{}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  gridIndices(width, height),
		Bounds:   bounds,
	}
}

// gridIndices triangulates a width x height vertex grid.
func gridIndices(width, height int) []uint32 {
	if width < 2 || height < 2 {
		return []uint32{}
	}

	indices := make([]uint32, 0, 6*(width-1)*(height-1))
	for z := 0; z < height-1; z++ {
		for x := 0; x < width-1; x++ {
			topLeft := uint32(z*width + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*width + x)
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return indices
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
