package waveguide

import "fmt"

// Geometry holds the fixed dimensions of the waveguide drawing.
// All lengths are in logical units except HandleDiameter, which is in pixels.
type Geometry struct {
	Width             float32 `toml:"width" yaml:"width"`                           // Total waveguide width (b[N])
	Height            float32 `toml:"height" yaml:"height"`                         // Inner waveguide height
	WallThickness     float32 `toml:"wall_thickness" yaml:"wall_thickness"`         // Top/bottom wall thickness
	FlangeHeight      float32 `toml:"flange_height" yaml:"flange_height"`           // Full flange height
	FlangeThickness   float32 `toml:"flange_thickness" yaml:"flange_thickness"`     // Flange thickness along x
	HeadWidth         float32 `toml:"head_width" yaml:"head_width"`                 // Connector head width
	ConnectorDiameter float32 `toml:"connector_diameter" yaml:"connector_diameter"` // Connector end-cap diameter
	SchematicWidth    float32 `toml:"schematic_width" yaml:"schematic_width"`       // Logical width of both views
	HandleDiameter    float32 `toml:"handle_diameter" yaml:"handle_diameter"`       // Handle size in pixels
}

// DefaultGeometry returns the stock waveguide dimensions.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:             70,
		Height:            10,
		WallThickness:     2,
		FlangeHeight:      20,
		FlangeThickness:   3,
		HeadWidth:         8,
		ConnectorDiameter: 3,
		SchematicWidth:    100,
		HandleDiameter:    10,
	}
}

// HousingWidth returns the logical width of the complete housing drawing,
// connector heads included.
func (g Geometry) HousingWidth() float32 {
	return g.Width + 2*g.FlangeThickness + 2*g.HeadWidth
}

// Validate reports whether the geometry can be drawn.
func (g Geometry) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"width", g.Width},
		{"height", g.Height},
		{"schematic_width", g.SchematicWidth},
		{"handle_diameter", g.HandleDiameter},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrGeometry, p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float32
	}{
		{"wall_thickness", g.WallThickness},
		{"flange_height", g.FlangeHeight},
		{"flange_thickness", g.FlangeThickness},
		{"head_width", g.HeadWidth},
		{"connector_diameter", g.ConnectorDiameter},
	}
	for _, p := range nonNegative {
		if p.v < 0 || isNaN32(p.v) {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrGeometry, p.name, p.v)
		}
	}

	if 2*g.FlangeThickness > g.Width {
		return fmt.Errorf("%w: flanges (2x%g) wider than waveguide (%g)", ErrGeometry, g.FlangeThickness, g.Width)
	}
	if w := g.HousingWidth(); w > g.SchematicWidth {
		return fmt.Errorf("%w: housing width %g exceeds schematic width %g", ErrGeometry, w, g.SchematicWidth)
	}
	return nil
}
