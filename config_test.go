package waveguide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTOML = `
boundaries = [0, 20, 50, 70]

[geometry]
width = 70
height = 12
handle_diameter = 8

[window]
title = "three layers"
`

const sampleYAML = `
layers: 4
geometry:
  height: 6
window:
  width: 640
  height: 480
`

func TestParseConfig_TOML(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleTOML), ".toml")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Layers, "layers implied by boundaries")
	assert.Equal(t, []float32{0, 20, 50, 70}, cfg.Boundaries)
	assert.Equal(t, float32(12), cfg.Geometry.Height)
	assert.Equal(t, float32(8), cfg.Geometry.HandleDiameter)
	assert.Equal(t, float32(2), cfg.Geometry.WallThickness, "unset values keep their default")
	assert.Equal(t, "three layers", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
}

func TestParseConfig_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(sampleYAML), ext)
			require.NoError(t, err)

			assert.Equal(t, 4, cfg.Layers)
			assert.Empty(t, cfg.Boundaries)
			assert.Equal(t, float32(6), cfg.Geometry.Height)
			assert.Equal(t, float32(70), cfg.Geometry.Width)
			assert.Equal(t, 640, cfg.Window.Width)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
		want error
	}{
		{"unknown extension", "layers = 2", ".json", ErrConfigFormat},
		{"zero layers", "layers = 0", ".toml", ErrLayerCount},
		{"wrong boundary count", "layers = 2\nboundaries = [0, 10, 20, 70]", ".toml", ErrBoundaryCount},
		{"boundary past width", "boundaries = [0, 20, 80]", ".toml", ErrBoundaryEndpoints},
		{"crossing boundaries", "boundaries: [0, 50, 20, 70]", ".yaml", ErrBoundaryOrder},
		{"housing too wide", "[geometry]\nschematic_width = 60", ".toml", ErrGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.ext)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("layers = ["), ".toml")
	assert.ErrorContains(t, err, "decode toml")

	_, err = ParseConfig([]byte("layers: [1"), ".yaml")
	assert.ErrorContains(t, err, "decode yaml")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waveguide.TOML")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Layers)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestConfig_BoundaryModel(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleTOML), ".toml")
	require.NoError(t, err)

	m, err := cfg.BoundaryModel()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 20, 50, 70}, m.Boundaries())

	cfg.Boundaries = nil
	cfg.Layers = 2
	m, err = cfg.BoundaryModel()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 35, 70}, m.Boundaries())
}

func TestGeometry_Validate(t *testing.T) {
	require.NoError(t, DefaultGeometry().Validate())
	assert.Equal(t, float32(92), DefaultGeometry().HousingWidth())

	mutate := []func(*Geometry){
		func(g *Geometry) { g.Width = 0 },
		func(g *Geometry) { g.Height = -1 },
		func(g *Geometry) { g.HandleDiameter = 0 },
		func(g *Geometry) { g.WallThickness = -1 },
		func(g *Geometry) { g.FlangeThickness = 40 },
		func(g *Geometry) { g.HeadWidth = 20 },
	}
	for i, m := range mutate {
		g := DefaultGeometry()
		m(&g)
		assert.ErrorIs(t, g.Validate(), ErrGeometry, "mutation %d", i)
	}
}

func TestShaderError(t *testing.T) {
	err := &ShaderError{Stage: StageFragment, Log: "0:3: syntax error"}
	assert.Equal(t, "fragment shader compilation failed: 0:3: syntax error", err.Error())

	err = &ShaderError{Stage: StageLink, Log: "missing main"}
	assert.Equal(t, "shader program linking failed: missing main", err.Error())
}
