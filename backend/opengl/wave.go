package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/waveguide"
)

const waveVertexShader = `
#version 410 core
layout (location = 0) in vec3 a_position;

uniform mat3 u_matrix;

out float v_offset;

void main() {
    v_offset = a_position.z;
    gl_Position = vec4(u_matrix * vec3(a_position.xy, 0.0), 1.0);
}
` + "\x00"

const waveFragmentShader = `
#version 410 core
in float v_offset;

uniform float u_phase;

out vec4 FragColor;

void main() {
    FragColor = vec4(cos(v_offset - u_phase), 0.0, 0.0, 1.0);
}
` + "\x00"

// WaveRenderer draws the realtime view: the layer mesh shaded by
// cos(offset - phase) in the red channel.
//
// The program is compiled once in NewWaveRenderer. Each Render rebuilds the
// mesh into a reused slice and uploads it to a single dynamic buffer.
type WaveRenderer struct {
	program   uint32
	vao, vbo  uint32
	matrixLoc int32
	phaseLoc  int32

	// Pane in framebuffer pixels, origin bottom-left.
	x, y          int32
	width, height int32

	mesh []waveguide.MeshVertex
}

// NewWaveRenderer compiles the wave shaders and allocates the vertex buffer.
// A shader that fails to compile or link is returned as an error; there is
// no fallback rendering mode.
func NewWaveRenderer() (*WaveRenderer, error) {
	program, err := createShaderProgram(waveVertexShader, waveFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("wave shader: %w", err)
	}

	r := &WaveRenderer{
		program:   program,
		matrixLoc: gl.GetUniformLocation(program, gl.Str("u_matrix\x00")),
		phaseLoc:  gl.GetUniformLocation(program, gl.Str("u_phase\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(unsafe.Sizeof(waveguide.MeshVertex{}))
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return r, nil
}

// SetViewport places the view in the framebuffer. x and y are the
// bottom-left corner in OpenGL window coordinates.
func (r *WaveRenderer) SetViewport(x, y, width, height int) {
	r.x, r.y = int32(x), int32(y)
	r.width, r.height = int32(width), int32(height)
}

// Render draws one frame. boundaries are centered on the origin and
// viewWidth logical units span the pane width.
func (r *WaveRenderer) Render(boundaries []float32, layerHeight, viewWidth, phase float32) error {
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	gl.Viewport(r.x, r.y, r.width, r.height)

	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(r.x, r.y, r.width, r.height)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	r.mesh = waveguide.AppendMesh(r.mesh[:0], boundaries, layerHeight)
	if len(r.mesh) == 0 {
		return nil
	}

	gl.UseProgram(r.program)

	proj := waveguide.WaveProjection(viewWidth, waveguide.Vec2{X: float32(r.width), Y: float32(r.height)})
	gl.UniformMatrix3fv(r.matrixLoc, 1, false, &proj[0])
	gl.Uniform1f(r.phaseLoc, phase)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.mesh)*int(unsafe.Sizeof(waveguide.MeshVertex{})),
		gl.Ptr(r.mesh), gl.DYNAMIC_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.mesh)))

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *WaveRenderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
