// Package render presents the interpreter's framebuffer as an OpenGL
// textured quad. The host scales and colors the 64x32 grid; the core
// never draws to screen itself.
package render

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/Tytraman/CHIP-8-Emulator/chip8"
)

// Renderer owns the GL resources used to present the framebuffer.
// Init must be called with a current GL context on the same thread
// that later calls Draw.
type Renderer struct {
	shader      uint32
	vao         uint32
	vbo         uint32
	tex         uint32
	initialized bool
}

// New creates a new renderer. No GL resources are allocated until Init.
func New() *Renderer {
	return &Renderer{}
}

// Init compiles the shader and allocates the quad and the framebuffer
// texture.
func (r *Renderer) Init() error {
	var err error

	r.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(r.shader)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	r.tex = makeTexture()
	r.initialized = true
	return nil
}

// Draw uploads the framebuffer and renders it to the current viewport.
func (r *Renderer) Draw(display *chip8.Display) {
	if !r.initialized {
		return
	}

	uploadTexture(r.tex, gl.RED, chip8.DisplayWidth, chip8.DisplayHeight,
		gl.RED, gl.UNSIGNED_BYTE, display.Pixels())

	gl.UseProgram(r.shader)
	gl.BindVertexArray(r.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if !r.initialized {
		return
	}
	r.initialized = false
	gl.DeleteTextures(1, &r.tex)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shader)
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
