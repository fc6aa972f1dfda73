// Package cli implements the wgview command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Every
// command resolves a waveguide.Config from the optional --config file and
// the --layers and --boundaries overrides.
//
// # Commands
//
//   - run: open the interactive viewer window (schematic and realtime view)
//   - export: render the schematic (SVG, PNG) or a realtime frame (PNG)
//   - mesh: print the realtime mesh vertices as a table
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context and also installed as the slog logger
// of the gg rasterizer.
package cli
