package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/waveguide"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// sceneOpts holds the persistent flags that select the waveguide.
type sceneOpts struct {
	configPath string // TOML or YAML config file
	layers     int    // layer count override, 0 keeps the config value
	boundaries string // comma-separated boundary override
}

// Execute runs the wgview CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool
	opts := &sceneOpts{}

	root := &cobra.Command{
		Use:          "wgview",
		Short:        "wgview shows the cross-section of a layered waveguide",
		Long:         `wgview lets you move the layer boundaries of a dielectric-filled waveguide on a schematic and watch an animated wave pattern follow them in realtime.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			gg.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wgview %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml, .yml)")
	root.PersistentFlags().IntVarP(&opts.layers, "layers", "n", 0, "number of evenly spaced layers")
	root.PersistentFlags().StringVarP(&opts.boundaries, "boundaries", "b", "", "comma-separated layer boundaries, e.g. 0,20,50,70")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newMeshCmd(opts))

	return root
}

// resolveConfig loads the config file, if any, and applies the flag
// overrides. Explicit boundaries win over --layers.
func resolveConfig(opts *sceneOpts) (waveguide.Config, error) {
	cfg := waveguide.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := waveguide.LoadConfig(opts.configPath)
		if err != nil {
			return waveguide.Config{}, err
		}
		cfg = loaded
	}

	switch {
	case opts.boundaries != "":
		b, err := parseBoundaries(opts.boundaries)
		if err != nil {
			return waveguide.Config{}, err
		}
		cfg.Boundaries = b
		cfg.Layers = len(b) - 1
	case opts.layers != 0:
		cfg.Layers = opts.layers
		cfg.Boundaries = nil
	}

	if err := cfg.Validate(); err != nil {
		return waveguide.Config{}, err
	}
	return cfg, nil
}

// parseBoundaries parses a comma-separated list of numbers.
func parseBoundaries(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	out := make([]float32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid boundary %q: %w", p, err)
		}
		out = append(out, float32(v))
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 values, got %d", waveguide.ErrBoundaryCount, len(out))
	}
	return out, nil
}
