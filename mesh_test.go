package waveguide

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMesh_SingleLayer(t *testing.T) {
	mesh := BuildMesh([]float32{0, 10}, 4)

	want := []MeshVertex{
		{X: 0, Y: -2, Offset: 0},
		{X: 10, Y: -2, Offset: 10},
		{X: 0, Y: 2, Offset: 0},
		{X: 10, Y: -2, Offset: 10},
		{X: 10, Y: 2, Offset: 10},
		{X: 0, Y: 2, Offset: 0},
	}
	if diff := cmp.Diff(want, mesh); diff != "" {
		t.Errorf("mesh mismatch (-want +got):\n%s", diff)
	}

	offsets := make([]float32, len(mesh))
	for i, v := range mesh {
		offsets[i] = v.Offset
	}
	if diff := cmp.Diff([]float32{0, 10, 0, 10, 10, 0}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMesh_OffsetIsLocalToLayer(t *testing.T) {
	mesh := BuildMesh([]float32{-35, -15, 15, 35}, 10)

	if len(mesh) != MeshVertexCount(3) {
		t.Fatalf("Expected %d vertices, got %d", MeshVertexCount(3), len(mesh))
	}

	starts := []float32{-35, -15, 15}
	for i, v := range mesh {
		layer := i / VerticesPerLayer
		if got := v.X - starts[layer]; got != v.Offset {
			t.Errorf("vertex %d: offset %f, want x - layer start = %f", i, v.Offset, got)
		}
		if v.Y != -5 && v.Y != 5 {
			t.Errorf("vertex %d: y = %f, want +-5", i, v.Y)
		}
	}
}

func TestBuildMesh_RoundTrip(t *testing.T) {
	b := []float32{-35, -15, 15, 35}

	first := BuildMesh(b, 10)
	_ = BuildMesh(b, 20)
	last := BuildMesh(b, 10)

	if diff := cmp.Diff(first, last); diff != "" {
		t.Errorf("mesh changed after rebuilding at another height (-first +last):\n%s", diff)
	}
}

func TestBuildMesh_Degenerate(t *testing.T) {
	if mesh := BuildMesh(nil, 4); mesh != nil {
		t.Errorf("Expected nil mesh for no boundaries, got %v", mesh)
	}
	if mesh := BuildMesh([]float32{5}, 4); mesh != nil {
		t.Errorf("Expected nil mesh for a single boundary, got %v", mesh)
	}

	// Zero-width layers still produce their six vertices.
	mesh := BuildMesh([]float32{0, 30, 30, 70}, 4)
	if len(mesh) != 18 {
		t.Errorf("Expected 18 vertices, got %d", len(mesh))
	}
	for _, v := range mesh[6:12] {
		if v.Offset != 0 {
			t.Errorf("Expected zero offsets in the empty layer, got %f", v.Offset)
		}
	}
}

func TestAppendMesh_ReusesBuffer(t *testing.T) {
	buf := make([]MeshVertex, 0, 64)
	buf = AppendMesh(buf[:0], []float32{0, 10, 20}, 2)
	first := &buf[0]

	buf = AppendMesh(buf[:0], []float32{0, 5, 20}, 2)
	if &buf[0] != first {
		t.Error("Expected AppendMesh to reuse the backing array")
	}
	if len(buf) != 12 {
		t.Errorf("Expected 12 vertices, got %d", len(buf))
	}
	if buf[1].Offset != 5 {
		t.Errorf("Expected rebuilt mesh, got offset %f", buf[1].Offset)
	}
}

func TestFloats(t *testing.T) {
	got := Floats(BuildMesh([]float32{0, 10}, 4))
	want := []float32{
		0, -2, 0,
		10, -2, 10,
		0, 2, 0,
		10, -2, 10,
		10, 2, 10,
		0, 2, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("floats mismatch (-want +got):\n%s", diff)
	}
}

func TestMeshVertexCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16} {
		if got := MeshVertexCount(n); got != 6*n {
			t.Errorf("MeshVertexCount(%d) = %d, want %d", n, got, 6*n)
		}
	}
	if got := MeshVertexCount(-1); got != 0 {
		t.Errorf("MeshVertexCount(-1) = %d, want 0", got)
	}
}
