package waveguide

import "testing"

func TestDrawList_AddRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(10, 20, 30, 40, ColorGreen)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("Expected 4 vertices and 6 indices, got %d and %d", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Fatalf("Expected one command with 6 elements, got %+v", dl.CmdBuffer)
	}
	if dl.VtxBuffer[2].Pos != [2]float32{40, 60} {
		t.Errorf("Expected bottom-right corner (40, 60), got %v", dl.VtxBuffer[2].Pos)
	}
}

func TestDrawList_SkipsTransparent(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	dl.AddCircle(5, 5, 5, ColorTransparent)
	dl.AddLine(0, 0, 10, 10, ColorTransparent, 1)
	dl.AddRectOutline(0, 0, 10, 10, ColorBlack, 0)

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected nothing drawn, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawList_ClipRectSplitsCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 50)
	dl.AddRect(0, 0, 10, 10, ColorBlack)
	dl.PopClipRect()
	dl.AddRect(0, 60, 10, 10, ColorBlack)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ClipRect != [4]float32{0, 0, 100, 50} {
		t.Errorf("Expected first command clipped to the pane, got %v", dl.CmdBuffer[0].ClipRect)
	}
	if dl.CmdBuffer[1].VertexOffset != 4 || dl.CmdBuffer[1].IndexOffset != 6 {
		t.Errorf("Expected second command to start after the first rect, got %+v", dl.CmdBuffer[1])
	}
	// Indices are relative to each command's vertex offset.
	if dl.IdxBuffer[6] != 0 {
		t.Errorf("Expected command-relative indices, got %d", dl.IdxBuffer[6])
	}
}

func TestDrawList_Circle(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddCircle(50, 50, 5, ColorGold)
	n := circleSegments(5)
	if len(dl.VtxBuffer) != n+1 || len(dl.IdxBuffer) != 3*n {
		t.Errorf("Expected fan of %d segments, got %d vertices and %d indices", n, len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	for _, v := range dl.VtxBuffer[1:] {
		dx, dy := v.Pos[0]-50, v.Pos[1]-50
		if !approx(dx*dx+dy*dy, 25, 1e-3) {
			t.Fatalf("rim vertex %v is not on the circle", v.Pos)
		}
	}
}

func TestDrawList_LineThickness(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddLine(0, 0, 1000, 0, ColorBlack, 2)
	if got := dl.VtxBuffer[0].Pos[1] - dl.VtxBuffer[3].Pos[1]; !approx(got, 2, 1e-4) {
		t.Errorf("Expected line thickness 2, got %f", got)
	}
}

func TestDrawList_PolylineClosed(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	tri := []Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	dl.AddPolyline(tri, ColorBlack, 1)
	if len(dl.VtxBuffer) != 3*4 {
		t.Errorf("Expected 3 closed segments, got %d vertices", len(dl.VtxBuffer))
	}

	dl.Clear()
	dl.AddPolyline(tri[:1], ColorBlack, 1)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected a single point to draw nothing, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestSchematicView_Draw(t *testing.T) {
	v := renderedView(t, []float32{0, 20, 50, 70})

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	v.Draw(dl)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 {
		t.Fatal("Expected schematic to produce geometry")
	}
	// The first quad is the first layer's fill.
	if dl.VtxBuffer[0].Color != ColorGreen || dl.VtxBuffer[0].Pos != [2]float32{15, 45} {
		t.Errorf("Expected first layer fill first, got %+v", dl.VtxBuffer[0])
	}
	// Handles are drawn last, in black.
	if last := dl.VtxBuffer[len(dl.VtxBuffer)-1]; last.Color != ColorBlack {
		t.Errorf("Expected a handle vertex last, got %+v", last)
	}
}
