package waveguide

import "fmt"

// BoundaryModel owns the ordered layer boundaries b[0..N] of an N-layer
// waveguide. b[0] is always 0 and b[N] always the waveguide width; the
// interior boundaries move one at a time through Adjust and never cross.
//
// The model is not safe for concurrent use. It is meant to live on the
// render thread, written by at most one drag gesture at a time.
type BoundaryModel struct {
	width      float32
	boundaries []float32
}

// NewBoundaryModel creates a model with layers evenly spaced across width.
func NewBoundaryModel(layers int, width float32) (*BoundaryModel, error) {
	if layers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLayerCount, layers)
	}
	if !(width > 0) {
		return nil, fmt.Errorf("%w: width must be positive, got %g", ErrGeometry, width)
	}

	b := make([]float32, layers+1)
	for i := 1; i < layers; i++ {
		b[i] = float32(i) * width / float32(layers)
	}
	b[layers] = width

	return &BoundaryModel{width: width, boundaries: b}, nil
}

// Layers returns the number of layers N.
func (m *BoundaryModel) Layers() int {
	return len(m.boundaries) - 1
}

// Width returns the fixed waveguide width b[N].
func (m *BoundaryModel) Width() float32 {
	return m.width
}

// Boundary returns b[i], or 0 when i is out of range.
func (m *BoundaryModel) Boundary(i int) float32 {
	if i < 0 || i >= len(m.boundaries) {
		return 0
	}
	return m.boundaries[i]
}

// Boundaries returns a copy of the boundary sequence.
func (m *BoundaryModel) Boundaries() []float32 {
	out := make([]float32, len(m.boundaries))
	copy(out, m.boundaries)
	return out
}

// Centered returns the boundaries shifted by -width/2, the frame in which
// the realtime view draws the waveguide around the origin.
func (m *BoundaryModel) Centered() []float32 {
	out := make([]float32, len(m.boundaries))
	half := 0.5 * m.width
	for i, b := range m.boundaries {
		out[i] = b - half
	}
	return out
}

// Draggable reports whether boundary i may be moved. The endpoints are fixed.
func (m *BoundaryModel) Draggable(i int) bool {
	return i > 0 && i < len(m.boundaries)-1
}

// Adjust moves interior boundary index by rawDelta pixels of the schematic
// surface described by vp, clamped between its neighbors, and returns the
// new value.
//
// Adjust never fails. Endpoints and out-of-range indices are left untouched.
// NaN deltas are ignored; infinite deltas land exactly on the neighbor.
func (m *BoundaryModel) Adjust(index int, rawDelta float32, vp Viewport) float32 {
	if !m.Draggable(index) {
		return m.Boundary(index)
	}

	lower := m.neighbor(index-1, 0)
	upper := m.neighbor(index+1, m.width)

	delta := vp.ToLogical(rawDelta)
	if isNaN32(delta) {
		delta = 0
	}

	m.boundaries[index] = clampf(m.boundaries[index]+delta, lower, upper)
	return m.boundaries[index]
}

func (m *BoundaryModel) neighbor(i int, fallback float32) float32 {
	if i < 0 || i >= len(m.boundaries) {
		return fallback
	}
	return m.boundaries[i]
}

// SetBoundaries replaces the whole sequence after validating it.
// The layer count cannot change; build a new model for that.
func (m *BoundaryModel) SetBoundaries(b []float32) error {
	if err := ValidateBoundaries(b, m.Layers(), m.width); err != nil {
		return err
	}
	copy(m.boundaries, b)
	return nil
}

// ValidateBoundaries checks that b describes layers layers across width.
func ValidateBoundaries(b []float32, layers int, width float32) error {
	if layers < 1 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, layers)
	}
	if len(b) != layers+1 {
		return fmt.Errorf("%w: want %d values, got %d", ErrBoundaryCount, layers+1, len(b))
	}
	if b[0] != 0 || b[len(b)-1] != width {
		return fmt.Errorf("%w: got [%g ... %g], want [0 ... %g]", ErrBoundaryEndpoints, b[0], b[len(b)-1], width)
	}
	for i := 1; i < len(b); i++ {
		if isNaN32(b[i]) || b[i] < b[i-1] {
			return fmt.Errorf("%w: b[%d]=%g after b[%d]=%g", ErrBoundaryOrder, i, b[i], i-1, b[i-1])
		}
	}
	return nil
}
