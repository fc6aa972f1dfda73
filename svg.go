package waveguide

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HatchPatternID is the id of the <pattern> used to fill the housing walls.
const HatchPatternID = "hatch_pattern"

// hatchSpacing is the hatch tile size in pixels, shared by every sink.
const hatchSpacing = 4

// WriteSVG writes the shapes of the last Render as a standalone SVG document
// sized to the render viewport.
func (s *SchematicView) WriteSVG(w io.Writer) error {
	vp := s.viewport

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(vp.Size.X), num(vp.Size.Y), num(vp.Origin.X), num(vp.Origin.Y), num(vp.Size.X), num(vp.Size.Y))

	renderHatchDefs(&buf)

	for _, r := range s.Layers() {
		renderRect(&buf, r)
	}
	for _, r := range s.housing.Rects {
		renderRect(&buf, r)
	}
	for _, p := range s.housing.Walls {
		renderPolygon(&buf, p)
	}
	for _, c := range s.housing.Connectors {
		renderCircle(&buf, c)
	}
	for _, c := range s.Handles() {
		renderCircle(&buf, c)
	}

	buf.WriteString("</svg>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func renderHatchDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">
      <path d="M-1,1 l2,-2 M0,4 l4,-4 M3,5 l2,-2" stroke="black" stroke-width="1"/>
    </pattern>
  </defs>
`, HatchPatternID, hatchSpacing, hatchSpacing)
}

func renderRect(buf *bytes.Buffer, r RectShape) {
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), styleAttrs(r.Style))
}

func renderCircle(buf *bytes.Buffer, c CircleShape) {
	fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
		num(c.CX), num(c.CY), num(c.R), styleAttrs(c.Style))
}

// renderPolygon skips polygons with fewer than two points.
func renderPolygon(buf *bytes.Buffer, p PolygonShape) {
	if len(p.Points) < 2 {
		return
	}
	fmt.Fprintf(buf, `  <polygon points="%s"%s/>`+"\n", pointsAttr(p.Points), styleAttrs(p.Style))
}

func pointsAttr(pts []Vec2) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

func styleAttrs(st ShapeStyle) string {
	fill := svgColor(st.Fill)
	if st.Hatched {
		fill = "url(#" + HatchPatternID + ")"
	}
	if st.StrokeWidth <= 0 {
		return fmt.Sprintf(` fill="%s"`, fill)
	}
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`, fill, svgColor(st.Stroke), num(st.StrokeWidth))
}

// svgColor formats a packed color as #rrggbb, or "none" when transparent.
func svgColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	if a == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
