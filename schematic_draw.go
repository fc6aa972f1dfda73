package waveguide

import (
	"math"
	"slices"
)

// Draw appends the shapes of the last Render to dl in SVG document order:
// layers, housing, handles.
func (s *SchematicView) Draw(dl *DrawList) {
	for _, r := range s.Layers() {
		drawRect(dl, r)
	}
	for _, r := range s.housing.Rects {
		drawRect(dl, r)
	}
	for _, p := range s.housing.Walls {
		drawPolygon(dl, p)
	}
	for _, c := range s.housing.Connectors {
		drawCircle(dl, c)
	}
	for _, c := range s.Handles() {
		drawCircle(dl, c)
	}
}

func drawRect(dl *DrawList, r RectShape) {
	dl.AddRect(r.X, r.Y, r.W, r.H, r.Style.Fill)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, r.Style.Stroke, r.Style.StrokeWidth)
}

func drawCircle(dl *DrawList, c CircleShape) {
	dl.AddCircle(c.CX, c.CY, c.R, c.Style.Fill)
	dl.AddCircleOutline(c.CX, c.CY, c.R, c.Style.Stroke, c.Style.StrokeWidth)
}

// drawPolygon draws the hatch and outline of a polygon. Only hatched
// polygons occur in the schematic, and the hatch tile has no background.
func drawPolygon(dl *DrawList, p PolygonShape) {
	if len(p.Points) < 2 {
		return
	}
	if p.Style.Hatched {
		for _, seg := range HatchSegments(p.Points, hatchSpacing) {
			dl.AddLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, ColorBlack, 1)
		}
	}
	dl.AddPolyline(p.Points, p.Style.Stroke, p.Style.StrokeWidth)
}

// HatchSegments returns the pieces of the diagonal lines x+y = k*spacing
// that lie inside the polygon pts (even-odd rule). Lines rise to the right
// on screen, like the SVG hatch pattern.
func HatchSegments(pts []Vec2, spacing float32) [][2]Vec2 {
	if len(pts) < 3 || !(spacing > 0) {
		return nil
	}

	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, p := range pts {
		d := p.X + p.Y
		lo = min(lo, d)
		hi = max(hi, d)
	}

	var segs [][2]Vec2
	var xs []float32
	// Lines are counted by integer index so large coordinates still terminate.
	kFirst := int64(math.Ceil(float64(lo) / float64(spacing)))
	kLast := int64(math.Floor(float64(hi) / float64(spacing)))
	for k := kFirst; k <= kLast; k++ {
		c := float32(k) * spacing
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			sa := a.X + a.Y - c
			sb := b.X + b.Y - c
			if (sa > 0) == (sb > 0) {
				continue
			}
			u := sa / (sa - sb)
			xs = append(xs, a.X+u*(b.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x1-x0 <= 0 {
				continue
			}
			segs = append(segs, [2]Vec2{{X: x0, Y: c - x0}, {X: x1, Y: c - x1}})
		}
	}
	return segs
}
