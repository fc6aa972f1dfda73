package waveguide

// ShapeStyle describes how a schematic shape is filled and outlined.
type ShapeStyle struct {
	Fill        uint32  // Packed fill color
	Hatched     bool    // Fill with the diagonal hatch pattern instead of Fill
	Stroke      uint32  // Packed outline color
	StrokeWidth float32 // Outline width in pixels (0 = no outline)
}

// RectShape is an axis-aligned rectangle in pixel coordinates.
type RectShape struct {
	X, Y, W, H float32
	Style      ShapeStyle
}

// CircleShape is a circle in pixel coordinates.
type CircleShape struct {
	CX, CY, R float32
	Style     ShapeStyle
}

// PolygonShape is a closed polygon in pixel coordinates.
type PolygonShape struct {
	Points []Vec2
	Style  ShapeStyle
}

// Housing is the static outline of the waveguide: two connector heads, two
// flanges, the upper and lower hatched walls and two connector end-caps.
// It depends on the geometry and viewport only.
type Housing struct {
	Rects      [4]RectShape
	Walls      [2]PolygonShape
	Connectors [2]CircleShape
}

var (
	layerStyle     = ShapeStyle{Fill: ColorGreen, Stroke: ColorBlack, StrokeWidth: 1}
	handleStyle    = ShapeStyle{Fill: ColorBlack}
	housingStyle   = ShapeStyle{Fill: ColorGray, Stroke: ColorBlack, StrokeWidth: 1.5}
	wallStyle      = ShapeStyle{Fill: ColorGray, Hatched: true, Stroke: ColorBlack, StrokeWidth: 1.5}
	connectorStyle = ShapeStyle{Fill: ColorGold, Stroke: ColorBlack, StrokeWidth: 1.5}
)

// SchematicView maps a boundary sequence onto the shapes of the schematic:
// one rectangle per layer, one handle per boundary and the housing.
//
// The shape slices are sized once for the layer count given to
// NewSchematicView. A different layer count needs a new view.
type SchematicView struct {
	geom Geometry

	layers  []RectShape
	handles []CircleShape
	housing Housing

	// Number of layers/handles filled by the last Render.
	drawnLayers  int
	drawnHandles int

	viewport     Viewport
	housingValid bool
}

// NewSchematicView creates a view for the given number of layers.
// A negative layer count is treated as zero.
func NewSchematicView(layers int, geom Geometry) *SchematicView {
	if layers < 0 {
		layers = 0
	}
	return &SchematicView{
		geom:    geom,
		layers:  make([]RectShape, layers),
		handles: make([]CircleShape, layers+1),
	}
}

// Geometry returns the view's geometry.
func (s *SchematicView) Geometry() Geometry {
	return s.geom
}

// Viewport returns the viewport of the last Render.
func (s *SchematicView) Viewport() Viewport {
	return s.viewport
}

// Layers returns the layer rectangles drawn by the last Render.
func (s *SchematicView) Layers() []RectShape {
	return s.layers[:s.drawnLayers]
}

// Handles returns the handle circles drawn by the last Render.
func (s *SchematicView) Handles() []CircleShape {
	return s.handles[:s.drawnHandles]
}

// Housing returns the static housing outline.
func (s *SchematicView) Housing() Housing {
	return s.housing
}

// Draggable reports whether handle i is bound to a drag gesture.
// Only interior handles are; the endpoints are fixed.
func (s *SchematicView) Draggable(i int) bool {
	return i > 0 && i < len(s.handles)-1
}

// Render recomputes every shape from boundaries for viewport vp.
// The housing is only recomputed when the viewport changed.
// Missing boundaries are not an error: only layers and handles with data
// are drawn, so an empty sequence draws nothing but the housing.
func (s *SchematicView) Render(boundaries []float32, vp Viewport) {
	if !s.housingValid || vp != s.viewport {
		s.viewport = vp
		s.housing = buildHousing(s.geom, vp)
		s.housingValid = true
	}

	half := 0.5 * s.geom.Width

	s.drawnLayers = 0
	for i := range s.layers {
		if i+1 >= len(boundaries) {
			break
		}
		x1, x2 := boundaries[i], boundaries[i+1]
		s.layers[i] = RectShape{
			X:     vp.ShiftX(x1 - half),
			Y:     vp.ShiftY(-0.5 * s.geom.Height),
			W:     vp.ScaleXY(x2 - x1),
			H:     vp.ScaleXY(s.geom.Height),
			Style: layerStyle,
		}
		s.drawnLayers++
	}

	s.drawnHandles = 0
	for i := range s.handles {
		if i >= len(boundaries) {
			break
		}
		s.handles[i] = CircleShape{
			CX:    vp.ShiftX(boundaries[i] - half),
			CY:    vp.ShiftY(0.5 * s.geom.Height),
			R:     0.5 * s.geom.HandleDiameter,
			Style: handleStyle,
		}
		s.drawnHandles++
	}
}

// HandleAt returns the index of the handle under pixel p.
// Later handles win where circles overlap, matching draw order.
func (s *SchematicView) HandleAt(p Vec2) (int, bool) {
	return s.handleAt(p, false)
}

// DraggableHandleAt is HandleAt restricted to interior handles. An endpoint
// drawn over an interior handle parked on the wall does not hide it.
func (s *SchematicView) DraggableHandleAt(p Vec2) (int, bool) {
	return s.handleAt(p, true)
}

func (s *SchematicView) handleAt(p Vec2, draggableOnly bool) (int, bool) {
	for i := s.drawnHandles - 1; i >= 0; i-- {
		if draggableOnly && !s.Draggable(i) {
			continue
		}
		h := s.handles[i]
		dx := p.X - h.CX
		dy := p.Y - h.CY
		if dx*dx+dy*dy <= h.R*h.R {
			return i, true
		}
	}
	return -1, false
}

// buildHousing lays out the housing around the logical origin.
func buildHousing(g Geometry, vp Viewport) Housing {
	var h Housing

	headCX := 0.5 * (g.Width + 2*g.FlangeThickness + g.HeadWidth)
	flangeCX := 0.5 * (g.Width + g.FlangeThickness)
	headH := g.Height + 2*g.WallThickness

	rects := [4]struct{ cx, w, h float32 }{
		{-headCX, g.HeadWidth, headH},
		{headCX, g.HeadWidth, headH},
		{-flangeCX, g.FlangeThickness, g.FlangeHeight},
		{flangeCX, g.FlangeThickness, g.FlangeHeight},
	}
	for i, r := range rects {
		h.Rects[i] = RectShape{
			X:     vp.ShiftX(r.cx - 0.5*r.w),
			Y:     vp.ShiftY(-0.5 * r.h),
			W:     vp.ScaleXY(r.w),
			H:     vp.ScaleXY(r.h),
			Style: housingStyle,
		}
	}

	// Upper wall including the flange necks; the lower wall mirrors it.
	outer := 0.5 * g.Width
	inner := 0.5 * (g.Width - 2*g.FlangeThickness)
	wall := [8]Vec2{
		{-outer, 0.5 * g.FlangeHeight},
		{-outer, 0.5 * g.Height},
		{outer, 0.5 * g.Height},
		{outer, 0.5 * g.FlangeHeight},
		{inner, 0.5 * g.FlangeHeight},
		{inner, 0.5 * headH},
		{-inner, 0.5 * headH},
		{-inner, 0.5 * g.FlangeHeight},
	}
	for i, sign := range [2]float32{1, -1} {
		pts := make([]Vec2, len(wall))
		for j, p := range wall {
			pts[j] = vp.Point(p.X, sign*p.Y)
		}
		h.Walls[i] = PolygonShape{Points: pts, Style: wallStyle}
	}

	for i, cx := range [2]float32{-headCX, headCX} {
		h.Connectors[i] = CircleShape{
			CX:    vp.ShiftX(cx),
			CY:    vp.ShiftY(0),
			R:     vp.ScaleXY(0.5 * g.ConnectorDiameter),
			Style: connectorStyle,
		}
	}
	return h
}
