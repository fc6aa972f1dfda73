package waveguide

import (
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// WriteSchematicPNG rasterizes the shapes of the last Render and encodes them
// as PNG. The image covers the render viewport on a white background.
func WriteSchematicPNG(w io.Writer, s *SchematicView) error {
	vp := s.Viewport()
	width, height := int(vp.Size.X), int(vp.Size.Y)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("rasterize schematic: empty viewport %gx%g", vp.Size.X, vp.Size.Y)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.Translate(-float64(vp.Origin.X), -float64(vp.Origin.Y))

	for _, r := range s.Layers() {
		if err := fillRect(dc, r); err != nil {
			return err
		}
	}
	for _, r := range s.housing.Rects {
		if err := fillRect(dc, r); err != nil {
			return err
		}
	}
	for _, p := range s.housing.Walls {
		if err := fillPolygon(dc, p); err != nil {
			return err
		}
	}
	for _, c := range s.housing.Connectors {
		if err := fillCircle(dc, c); err != nil {
			return err
		}
	}
	for _, c := range s.Handles() {
		if err := fillCircle(dc, c); err != nil {
			return err
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode schematic png: %w", err)
	}
	return nil
}

func fillRect(dc *gg.Context, r RectShape) error {
	dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	return paint(dc, r.Style)
}

func fillCircle(dc *gg.Context, c CircleShape) error {
	dc.DrawCircle(float64(c.CX), float64(c.CY), float64(c.R))
	return paint(dc, c.Style)
}

func fillPolygon(dc *gg.Context, p PolygonShape) error {
	if len(p.Points) < 2 {
		return nil
	}
	if p.Style.Hatched {
		dc.SetColor(nrgba(ColorBlack))
		dc.SetLineWidth(1)
		for _, seg := range HatchSegments(p.Points, hatchSpacing) {
			dc.DrawLine(float64(seg[0].X), float64(seg[0].Y), float64(seg[1].X), float64(seg[1].Y))
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("stroke hatch: %w", err)
			}
		}
	}

	dc.MoveTo(float64(p.Points[0].X), float64(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		dc.LineTo(float64(pt.X), float64(pt.Y))
	}
	dc.ClosePath()

	st := p.Style
	st.Fill = ColorTransparent
	return paint(dc, st)
}

// paint fills and strokes the current path and clears it.
func paint(dc *gg.Context, st ShapeStyle) error {
	if st.Fill&0xFF000000 != 0 && !st.Hatched {
		dc.SetColor(nrgba(st.Fill))
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if st.StrokeWidth > 0 && st.Stroke&0xFF000000 != 0 {
		dc.SetColor(nrgba(st.Stroke))
		dc.SetLineWidth(float64(st.StrokeWidth))
		if err := dc.StrokePreserve(); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	dc.ClearPath()
	return nil
}

func nrgba(c uint32) color.NRGBA {
	r, g, b, a := UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// WaveFrame describes one frame of the realtime view for CPU rendering.
type WaveFrame struct {
	Boundaries  []float32 // Centered boundaries, as drawn by the GPU view
	LayerHeight float32
	ViewWidth   float32
	Phase       float32
}

// ShadeAt returns the red intensity of the frame at logical point (x, y),
// and false when the point lies outside every layer.
func (f WaveFrame) ShadeAt(x, y float32) (float32, bool) {
	if len(f.Boundaries) < 2 || y < -0.5*f.LayerHeight || y > 0.5*f.LayerHeight {
		return 0, false
	}
	for i := 1; i < len(f.Boundaries); i++ {
		x1, x2 := f.Boundaries[i-1], f.Boundaries[i]
		if x >= x1 && x <= x2 && x2 > x1 {
			return clampf(Shade(x-x1, f.Phase), 0, 1), true
		}
	}
	return 0, false
}

// WriteWavePNG renders frame on the CPU at width x height pixels with the
// same projection and shading as the GPU view, and encodes it as PNG.
func WriteWavePNG(w io.Writer, frame WaveFrame, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("rasterize wave: empty surface %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(0, 0, 0))

	m := WaveProjection(frame.ViewWidth, Vec2{X: float32(width), Y: float32(height)})
	sx, sy := m[0], m[4]
	if sx == 0 || sy == 0 {
		return fmt.Errorf("rasterize wave: degenerate projection (view width %g)", frame.ViewWidth)
	}

	for py := 0; py < height; py++ {
		ndcY := 1 - 2*(float32(py)+0.5)/float32(height)
		y := ndcY / sy
		for px := 0; px < width; px++ {
			ndcX := 2*(float32(px)+0.5)/float32(width) - 1
			red, ok := frame.ShadeAt(ndcX/sx, y)
			if !ok {
				continue
			}
			dc.SetPixel(px, py, gg.RGB(float64(red), 0, 0))
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode wave png: %w", err)
	}
	return nil
}
