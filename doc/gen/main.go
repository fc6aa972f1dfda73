// Command gen renders the schematic and a few realtime frames with sample
// boundaries and saves them to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/waveguide"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// image defines a single picture to generate.
type image struct {
	name   string                              // filename with extension
	width  int                                 // image width
	height int                                 // image height
	render func(*bytes.Buffer, int, int) error // writes the encoded image
}

func run() error {
	geom := waveguide.DefaultGeometry()
	model, err := waveguide.NewBoundaryModel(3, geom.Width)
	if err != nil {
		return err
	}
	if err := model.SetBoundaries([]float32{0, 20, 50, 70}); err != nil {
		return err
	}

	schematic := func(svg bool) func(*bytes.Buffer, int, int) error {
		return func(buf *bytes.Buffer, w, h int) error {
			view := waveguide.NewSchematicView(model.Layers(), geom)
			view.Render(model.Boundaries(), waveguide.NewViewport(float32(w), float32(h), geom.SchematicWidth))
			if svg {
				return view.WriteSVG(buf)
			}
			return waveguide.WriteSchematicPNG(buf, view)
		}
	}
	wave := func(phase float32) func(*bytes.Buffer, int, int) error {
		return func(buf *bytes.Buffer, w, h int) error {
			return waveguide.WriteWavePNG(buf, waveguide.WaveFrame{
				Boundaries:  model.Centered(),
				LayerHeight: geom.Height,
				ViewWidth:   geom.SchematicWidth,
				Phase:       phase,
			}, w, h)
		}
	}

	images := []image{
		{"schematic.svg", 800, 200, schematic(true)},
		{"schematic.png", 800, 200, schematic(false)},
		{"wave_0.png", 800, 200, wave(0)},
		{"wave_half_pi.png", 800, 200, wave(math.Pi / 2)},
		{"wave_pi.png", 800, 200, wave(math.Pi)},
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, img := range images {
		var buf bytes.Buffer
		if err := img.render(&buf, img.width, img.height); err != nil {
			return fmt.Errorf("render %s: %w", img.name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, img.name), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", img.name, err)
		}
		fmt.Printf("  %s (%dx%d)\n", img.name, img.width, img.height)
	}
	return nil
}
