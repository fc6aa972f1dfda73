package waveguide

// VerticesPerLayer is the number of mesh vertices emitted for one layer:
// two triangles covering the layer's quad.
const VerticesPerLayer = 6

// MeshVertexCount returns the vertex count of a mesh with the given layers.
func MeshVertexCount(layers int) int {
	if layers < 0 {
		return 0
	}
	return layers * VerticesPerLayer
}

// BuildMesh converts a boundary sequence into a triangle list, one quad per
// layer spanning y in [-layerHeight/2, layerHeight/2].
//
// Each vertex carries its offset from the layer's left edge, so the shading
// pattern restarts at every boundary. The boundaries are assumed to be
// non-decreasing; BuildMesh does not check.
func BuildMesh(boundaries []float32, layerHeight float32) []MeshVertex {
	if len(boundaries) < 2 {
		return nil
	}
	return AppendMesh(make([]MeshVertex, 0, MeshVertexCount(len(boundaries)-1)), boundaries, layerHeight)
}

// AppendMesh appends the mesh for boundaries to dst and returns the result.
// Renderers use it to reuse one buffer across frames.
func AppendMesh(dst []MeshVertex, boundaries []float32, layerHeight float32) []MeshVertex {
	y1 := -0.5 * layerHeight
	y2 := 0.5 * layerHeight

	for i := 1; i < len(boundaries); i++ {
		x1 := boundaries[i-1]
		x2 := boundaries[i]
		w := x2 - x1

		dst = append(dst,
			MeshVertex{X: x1, Y: y1, Offset: 0},
			MeshVertex{X: x2, Y: y1, Offset: w},
			MeshVertex{X: x1, Y: y2, Offset: 0},

			MeshVertex{X: x2, Y: y1, Offset: w},
			MeshVertex{X: x2, Y: y2, Offset: w},
			MeshVertex{X: x1, Y: y2, Offset: 0},
		)
	}
	return dst
}

// Floats flattens a mesh into x, y, offset triples.
func Floats(mesh []MeshVertex) []float32 {
	out := make([]float32, 0, 3*len(mesh))
	for _, v := range mesh {
		out = append(out, v.X, v.Y, v.Offset)
	}
	return out
}
