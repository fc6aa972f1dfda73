package waveguide

import "testing"

func TestViewport_Mapping(t *testing.T) {
	vp := NewViewport(200, 100, 100)

	if vp.Scale() != 2 {
		t.Errorf("Expected scale 2, got %f", vp.Scale())
	}
	if got := vp.ShiftX(0); got != 100 {
		t.Errorf("ShiftX(0) = %f, want 100", got)
	}
	if got := vp.ShiftX(-50); got != 0 {
		t.Errorf("ShiftX(-50) = %f, want 0", got)
	}
	if got := vp.ShiftY(5); got != 60 {
		t.Errorf("ShiftY(5) = %f, want 60", got)
	}
	if got := vp.ScaleXY(3); got != 6 {
		t.Errorf("ScaleXY(3) = %f, want 6", got)
	}
	if got := vp.ToLogical(10); got != 5 {
		t.Errorf("ToLogical(10) = %f, want 5", got)
	}
	if got := vp.Point(10, -10); got != (Vec2{X: 120, Y: 30}) {
		t.Errorf("Point(10, -10) = %v, want {120 30}", got)
	}
}

func TestViewport_Origin(t *testing.T) {
	vp := Viewport{Origin: Vec2{X: 10, Y: 20}, Size: Vec2{X: 100, Y: 50}, LogicalWidth: 100}

	if got := vp.ShiftX(0); got != 60 {
		t.Errorf("ShiftX(0) = %f, want 60", got)
	}
	if got := vp.ShiftY(0); got != 45 {
		t.Errorf("ShiftY(0) = %f, want 45", got)
	}
	if got := vp.Bounds(); got != (Rect{X: 10, Y: 20, W: 100, H: 50}) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestViewport_Empty(t *testing.T) {
	var vp Viewport
	if vp.Scale() != 0 {
		t.Errorf("Expected zero scale without logical width, got %f", vp.Scale())
	}
	if got := vp.ToLogical(50); got != 0 {
		t.Errorf("Expected ToLogical to return 0 on an empty viewport, got %f", got)
	}
}
