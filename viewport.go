package waveguide

// Viewport maps the logical coordinate space onto a pixel rectangle.
// It is derived every frame from the current surface size and is never
// stored by the boundary model.
//
// The logical origin sits at the center of the rectangle; one logical unit
// spans Size.X/LogicalWidth pixels on both axes.
type Viewport struct {
	Origin       Vec2    // Top-left pixel of the drawing area
	Size         Vec2    // Pixel size of the drawing area
	LogicalWidth float32 // Logical units spanning Size.X
}

// NewViewport creates a viewport anchored at the window origin.
func NewViewport(width, height, logicalWidth float32) Viewport {
	return Viewport{Size: Vec2{X: width, Y: height}, LogicalWidth: logicalWidth}
}

// Scale returns pixels per logical unit.
func (v Viewport) Scale() float32 {
	if v.LogicalWidth == 0 {
		return 0
	}
	return v.Size.X / v.LogicalWidth
}

// ShiftX converts a centered logical x coordinate to a pixel x coordinate.
func (v Viewport) ShiftX(x float32) float32 {
	return v.Origin.X + 0.5*v.Size.X + x*v.Scale()
}

// ShiftY converts a centered logical y coordinate to a pixel y coordinate.
func (v Viewport) ShiftY(y float32) float32 {
	return v.Origin.Y + 0.5*v.Size.Y + y*v.Scale()
}

// Point converts a centered logical point to pixels.
func (v Viewport) Point(x, y float32) Vec2 {
	return Vec2{X: v.ShiftX(x), Y: v.ShiftY(y)}
}

// ScaleXY converts a logical length to pixels.
func (v Viewport) ScaleXY(l float32) float32 {
	return l * v.Scale()
}

// ToLogical converts a pixel delta to logical units.
// A viewport without width maps every delta to zero.
func (v Viewport) ToLogical(dpx float32) float32 {
	if v.Size.X <= 0 {
		return 0
	}
	return dpx * (v.LogicalWidth / v.Size.X)
}

// Bounds returns the pixel rectangle covered by the viewport.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.Origin.X, Y: v.Origin.Y, W: v.Size.X, H: v.Size.Y}
}
