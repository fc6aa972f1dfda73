package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/waveguide"
)

const (
	viewSchematic = "schematic" // housing, layers and handles
	viewWave      = "wave"      // one frame of the realtime view

	formatSVG = "svg"
	formatPNG = "png"

	defaultExportWidth  = 800 // default image width in pixels
	defaultExportHeight = 200 // default image height in pixels
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string  // output file; derived from view and format when empty
	view   string  // "schematic" or "wave"
	format string  // "svg" or "png"; inferred from output when empty
	width  int     // image width in pixels
	height int     // image height in pixels
	phase  float64 // phase of the wave frame in radians
}

func newExportCmd(scene *sceneOpts) *cobra.Command {
	opts := exportOpts{
		view:   viewSchematic,
		width:  defaultExportWidth,
		height: defaultExportHeight,
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the schematic or a realtime frame to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(scene)
			if err != nil {
				return err
			}
			if err := opts.normalize(); err != nil {
				return err
			}
			return runExport(cmd.Context(), cfg, &opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <view>.<format>)")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "view to export: schematic, wave")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png (default from --output, else svg for schematic, png for wave)")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cmd.Flags().Float64Var(&opts.phase, "phase", 0, "wave phase in radians")

	return cmd
}

// normalize fills in the format and output path and validates the flags.
func (o *exportOpts) normalize() error {
	if o.view != viewSchematic && o.view != viewWave {
		return fmt.Errorf("invalid view: %s (must be 'schematic' or 'wave')", o.view)
	}
	if o.format == "" && o.output != "" {
		o.format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.output)), ".")
	}
	if o.format == "" {
		o.format = formatSVG
		if o.view == viewWave {
			o.format = formatPNG
		}
	}
	switch {
	case o.format != formatSVG && o.format != formatPNG:
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", o.format)
	case o.view == viewWave && o.format != formatPNG:
		return fmt.Errorf("invalid format: %s (the wave view only exports to png)", o.format)
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("invalid size: %dx%d", o.width, o.height)
	}
	if o.output == "" {
		o.output = o.view + "." + o.format
	}
	return nil
}

func runExport(ctx context.Context, cfg waveguide.Config, opts *exportOpts, out io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	model, err := cfg.BoundaryModel()
	if err != nil {
		return err
	}
	logger.Debug("boundaries", "values", model.Boundaries())

	data, err := renderExport(cfg, model, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done("Exported " + opts.view)
	printSuccess(out, "Exported %s view (%d layers)", opts.view, model.Layers())
	printFile(out, opts.output)
	return nil
}

// renderExport renders the requested view into memory.
func renderExport(cfg waveguide.Config, model *waveguide.BoundaryModel, opts *exportOpts) ([]byte, error) {
	var buf bytes.Buffer
	geom := cfg.Geometry

	switch opts.view {
	case viewWave:
		frame := waveguide.WaveFrame{
			Boundaries:  model.Centered(),
			LayerHeight: geom.Height,
			ViewWidth:   geom.SchematicWidth,
			Phase:       float32(opts.phase),
		}
		if err := waveguide.WriteWavePNG(&buf, frame, opts.width, opts.height); err != nil {
			return nil, err
		}
	default:
		view := waveguide.NewSchematicView(model.Layers(), geom)
		vp := waveguide.NewViewport(float32(opts.width), float32(opts.height), geom.SchematicWidth)
		view.Render(model.Boundaries(), vp)

		var err error
		if opts.format == formatPNG {
			err = waveguide.WriteSchematicPNG(&buf, view)
		} else {
			err = view.WriteSVG(&buf)
		}
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
