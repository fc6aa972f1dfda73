package waveguide

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// WindowConfig configures the viewer window.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// Config is the viewer configuration file.
//
//	layers = 3
//	boundaries = [0, 20, 50, 70]
//
//	[geometry]
//	width = 70
//	height = 10
//
//	[window]
//	width = 1024
//	height = 768
type Config struct {
	Layers     int          `toml:"layers" yaml:"layers"`
	Boundaries []float32    `toml:"boundaries" yaml:"boundaries"`
	Geometry   Geometry     `toml:"geometry" yaml:"geometry"`
	Window     WindowConfig `toml:"window" yaml:"window"`
}

// DefaultConfig returns a single-layer configuration with the stock geometry.
func DefaultConfig() Config {
	return Config{
		Layers:   1,
		Geometry: DefaultGeometry(),
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "waveguide",
		},
	}
}

// Validate checks the geometry, layer count and explicit boundaries.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.Layers < 1 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, c.Layers)
	}
	if len(c.Boundaries) > 0 {
		if err := ValidateBoundaries(c.Boundaries, c.Layers, c.Geometry.Width); err != nil {
			return err
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file.
// Values missing from the file keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the format named by ext (".toml", ".yaml"
// or ".yml") on top of DefaultConfig and validates the result.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()

	switch ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}

	// Boundaries imply the layer count when it was left at the default.
	if n := len(cfg.Boundaries); n > 1 && cfg.Layers == 1 {
		cfg.Layers = n - 1
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BoundaryModel builds the boundary model described by c: the explicit
// boundaries when given, evenly spaced ones otherwise.
func (c Config) BoundaryModel() (*BoundaryModel, error) {
	model, err := NewBoundaryModel(c.Layers, c.Geometry.Width)
	if err != nil {
		return nil, err
	}
	if len(c.Boundaries) > 0 {
		if err := model.SetBoundaries(c.Boundaries); err != nil {
			return nil, err
		}
	}
	return model, nil
}
