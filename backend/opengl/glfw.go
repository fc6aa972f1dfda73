package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/waveguide"
)

// GLFWInputAdapter adapts GLFW input to waveguide.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *waveguide.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  waveguide.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update prepares the input state for a new frame and polls events.
// Call this at the start of each frame.
func (a *GLFWInputAdapter) Update() *waveguide.InputState {
	a.input.Reset()
	glfw.PollEvents()

	// Cursor position is reported in screen coordinates; the schematic is
	// laid out in framebuffer pixels.
	x, y := a.window.GetCursorPos()
	sx, sy := a.contentScale()
	a.input.SetMousePos(float32(x)*sx, float32(y)*sy)

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *waveguide.InputState {
	return a.input
}

// FramebufferSize returns the framebuffer size in pixels.
func (a *GLFWInputAdapter) FramebufferSize() (int, int) {
	return a.window.GetFramebufferSize()
}

func (a *GLFWInputAdapter) contentScale() (float32, float32) {
	fw, fh := a.window.GetFramebufferSize()
	ww, wh := a.window.GetSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == waveguide.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	sx, sy := a.contentScale()
	a.input.SetMousePos(float32(xpos)*sx, float32(ypos)*sy)
}

func glfwKeyToKey(key glfw.Key) waveguide.Key {
	switch key {
	case glfw.KeyEscape:
		return waveguide.KeyEscape
	case glfw.KeyR:
		return waveguide.KeyR
	case glfw.KeySpace:
		return waveguide.KeySpace
	default:
		return waveguide.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) waveguide.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return waveguide.MouseButtonLeft
	case glfw.MouseButtonRight:
		return waveguide.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return waveguide.MouseButtonMiddle
	default:
		return -1
	}
}
