package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pingpong/internal/font"
	"pingpong/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// fontTexUnit is the texture unit the atlas is bound to.
const fontTexUnit = 2

// Renderer implements game.Canvas with a single batched draw per Present.
type Renderer struct {
	window        *glfw.Window
	width, height int // logical size

	fontTex  uint32
	prog     uint32
	vao      uint32
	vbo      uint32
	uRes     int32
	uFontTex int32

	clear game.RGB
	batch batch
}

func newRenderer(window *glfw.Window, width, height int) (*Renderer, error) {
	prog, err := linkProgram(batchVertSrc, batchFragSrc)
	if err != nil {
		return nil, fmt.Errorf("batch program: %w", err)
	}
	r := &Renderer{window: window, width: width, height: height, prog: prog}

	gl.UseProgram(prog)
	r.uRes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.uFontTex, fontTexUnit)

	r.initFont()

	// VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.vao = vao
	r.vbo = vbo
	gl.BindVertexArray(0)
	return r, nil
}

// initFont uploads the glyph atlas.
func (r *Renderer) initFont() {
	img := font.Atlas()
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.fontTex = tex
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

func (r *Renderer) SetTitle(title string) { r.window.SetTitle(title) }

// Clear starts a new frame filled with c. Anything queued since the last
// Present is dropped.
func (r *Renderer) Clear(c game.RGB) {
	r.clear = c
	r.batch.reset()
}

func (r *Renderer) FillRect(rect game.Rect, c game.RGBA) { r.batch.rect(rect, c) }

func (r *Renderer) FillCircle(cx, cy, radius float64, c game.RGBA) {
	r.batch.circle(cx, cy, radius, c)
}

func (r *Renderer) DrawText(text string, x, y int, scale float32, c game.RGB) {
	r.batch.text(text, x, y, scale, c)
}

func (r *Renderer) TextWidth(text string, scale float32) int { return font.TextWidth(text, scale) }

// Present draws the queued batch and swaps buffers.
func (r *Renderer) Present() {
	fbW, fbH := r.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(r.clear.R)/255.0,
		float32(r.clear.G)/255.0,
		float32(r.clear.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if n := r.batch.vertexCount(); n > 0 {
		gl.UseProgram(r.prog)
		gl.BindVertexArray(r.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.Uniform2f(r.uRes, float32(r.width), float32(r.height))

		gl.ActiveTexture(gl.TEXTURE0 + fontTexUnit)
		gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

		gl.BufferData(gl.ARRAY_BUFFER, len(r.batch.verts)*4, gl.Ptr(r.batch.verts), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))

		gl.Disable(gl.BLEND)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindVertexArray(0)
	}
	r.window.SwapBuffers()
	r.batch.reset()
}
