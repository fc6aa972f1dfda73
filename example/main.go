// Example opens a window with a three-layer waveguide: the schematic on top
// and the animated realtime view below. Drag the inner handles to move the
// layer boundaries.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/waveguide"
	"github.com/go-theft-auto/waveguide/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "waveguide example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	schematic, err := opengl.NewSchematicRenderer(w, h)
	if err != nil {
		return fmt.Errorf("schematic renderer: %w", err)
	}
	defer schematic.Delete()

	// A shader that does not compile ends the program here.
	wave, err := opengl.NewWaveRenderer()
	if err != nil {
		return fmt.Errorf("wave renderer: %w", err)
	}
	defer wave.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	geom := waveguide.DefaultGeometry()
	scene, err := waveguide.NewScene(3, geom,
		waveguide.WithSchematicRenderer(schematic),
		waveguide.WithWaveRenderer(wave),
	)
	if err != nil {
		return err
	}
	scene.Actions().Register("quit", waveguide.KeyEscape, func() { window.SetShouldClose(true) })

	for !window.ShouldClose() {
		state := input.Update()

		w, h := input.FramebufferSize()
		schematic.Resize(w, h)
		wave.SetViewport(0, 0, w, h/2)

		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		vp := waveguide.NewViewport(float32(w), float32(h/2), geom.SchematicWidth)
		if err := scene.Frame(state, vp, time.Now()); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	return nil
}
