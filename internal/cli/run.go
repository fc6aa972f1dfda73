package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/waveguide"
	"github.com/go-theft-auto/waveguide/backend/opengl"
)

func newRunCmd(scene *sceneOpts) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive viewer",
		Long: `Open a window with the schematic on top and the realtime view below.

Drag the interior handles to move layer boundaries. Space pauses the
animation, R spaces the boundaries evenly again, Escape quits. With --watch
the config file is reloaded whenever it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(scene)
			if err != nil {
				return err
			}
			var watcher *waveguide.ConfigWatcher
			if watch {
				if scene.configPath == "" {
					return fmt.Errorf("--watch needs --config")
				}
				watcher, err = waveguide.NewConfigWatcher(scene.configPath, loggerFromContext(cmd.Context()))
				if err != nil {
					return err
				}
				defer watcher.Stop()
			}
			return runViewer(cmd.Context(), cfg, watcher)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file when it changes")

	return cmd
}

// runViewer owns the window and the render loop. GLFW and OpenGL calls must
// stay on the main OS thread, which cmd/wgview locks in init.
func runViewer(ctx context.Context, cfg waveguide.Config, watcher *waveguide.ConfigWatcher) error {
	logger := loggerFromContext(ctx)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	fbw, fbh := window.GetFramebufferSize()
	schematic, err := opengl.NewSchematicRenderer(fbw, fbh)
	if err != nil {
		return err
	}
	defer schematic.Delete()

	wave, err := opengl.NewWaveRenderer()
	if err != nil {
		return err
	}
	defer wave.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	scene, err := waveguide.NewScene(cfg.Layers, cfg.Geometry,
		waveguide.WithSchematicRenderer(schematic),
		waveguide.WithWaveRenderer(wave),
		waveguide.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err := scene.Apply(cfg); err != nil {
		return err
	}

	scene.Actions().Register("quit", waveguide.KeyEscape, func() { window.SetShouldClose(true) })

	var updates <-chan waveguide.Config
	if watcher != nil {
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		updates = watcher.Updates()
	}

	logger.Info("viewer started", "layers", cfg.Layers)

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		state := input.Update()

		select {
		case next := <-updates:
			applyConfig(logger, scene, next)
		default:
		}

		w, h := input.FramebufferSize()
		if w != fbw || h != fbh {
			fbw, fbh = w, h
			schematic.Resize(w, h)
			logger.Debug("resize", "width", w, "height", h)
		}

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Schematic on the top half, realtime view on the bottom half.
		// The wave pane is placed in OpenGL coordinates (origin bottom-left).
		top := h / 2
		wave.SetViewport(0, 0, w, h-top)
		vp := waveguide.Viewport{
			Size:         waveguide.Vec2{X: float32(w), Y: float32(top)},
			LogicalWidth: scene.Geometry().SchematicWidth,
		}

		if err := scene.Frame(state, vp, time.Now()); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	logger.Info("viewer closed", "frames", scene.Frames())
	return nil
}

// applyConfig applies a reloaded config, keeping the current scene when it
// is rejected.
func applyConfig(logger *log.Logger, scene *waveguide.Scene, cfg waveguide.Config) {
	if err := scene.Apply(cfg); err != nil {
		logger.Warn("config rejected", "err", err)
	}
}
