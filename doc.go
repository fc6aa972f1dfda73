/*
Package waveguide models and renders the cross-section of a layered,
dielectric-filled waveguide.

# Overview

A waveguide of width W is split into N layers by N+1 boundaries
b[0] = 0 <= b[1] <= ... <= b[N] = W. The BoundaryModel owns that sequence.
Its interior boundaries move one at a time through Adjust, which converts
a pixel delta to logical units and clamps the result between the
neighbors, so the sequence can never become unordered.

Two views read the same model every frame:

  - SchematicView lays out a schematic: one green rectangle per layer, one
    handle per boundary and a static housing with hatched walls. The shapes
    are plain values; they are written as SVG (WriteSVG), rasterized to PNG
    (WriteSchematicPNG) or appended to a DrawList for the OpenGL backend.
  - The realtime view draws BuildMesh's triangles with a shader whose red
    channel is cos(offset - phase), where offset is the distance from the
    start of the vertex's layer and the phase grows at PhaseRate radians per
    second. The OpenGL renderer lives in backend/opengl; WriteWavePNG
    renders the same frame on the CPU.

# Quick Start

	scene, err := waveguide.NewScene(3, waveguide.DefaultGeometry(),
	    waveguide.WithSchematicRenderer(schematic),
	    waveguide.WithWaveRenderer(wave),
	)
	if err != nil {
	    return err
	}

	for !window.ShouldClose() {
	    input := adapter.Update()
	    vp := waveguide.NewViewport(float32(w), float32(h/2), 100)
	    if err := scene.Frame(input, vp, time.Now()); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Frame Order

Scene.Frame handles keys first, then the active drag step (which mutates
the model and redraws the schematic), then the schematic draw list and
finally the realtime view. Both views therefore always show the same
boundaries.

# Keyboard Shortcuts

	Left drag        Move an interior boundary
	Space            Pause/resume the animation
	R                Space the boundaries evenly again
	Escape           Quit (handled by the window owner)

# Configuration

Config is read from TOML or YAML (LoadConfig) and may be reloaded while the
viewer runs (ConfigWatcher). Invalid files are rejected as a whole; the
scene keeps its previous state.

# Thread Safety

BoundaryModel, SchematicView and Scene are not safe for concurrent use and
belong to the render thread. ConfigWatcher only hands new configs over a
channel.
*/
package waveguide
