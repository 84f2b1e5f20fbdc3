package desktop

import (
	"math"

	"pingpong/internal/font"
	"pingpong/internal/game"
)

// floatsPerVertex is pos(2) + uv(2) + color(4).
const floatsPerVertex = 8

// circleSegments is enough for a smooth 10 px ball.
const circleSegments = 32

// batch accumulates triangles in logical screen pixels.
type batch struct {
	verts []float32
}

func (b *batch) reset() { b.verts = b.verts[:0] }

func (b *batch) vertexCount() int { return len(b.verts) / floatsPerVertex }

func (b *batch) vertex(x, y, u, v float32, c [4]float32) {
	b.verts = append(b.verts, x, y, u, v, c[0], c[1], c[2], c[3])
}

// quad queues two triangles: TL, TR, BL then TR, BR, BL.
func (b *batch) quad(x, y, w, h, u0, v0, u1, v1 float32, c [4]float32) {
	b.vertex(x, y, u0, v0, c)
	b.vertex(x+w, y, u1, v0, c)
	b.vertex(x, y+h, u0, v1, c)
	b.vertex(x+w, y, u1, v0, c)
	b.vertex(x+w, y+h, u1, v1, c)
	b.vertex(x, y+h, u0, v1, c)
}

func (b *batch) rect(r game.Rect, col game.RGBA) {
	u, v := font.SolidUV()
	b.quad(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), u, v, u, v, rgba(col))
}

func (b *batch) circle(cx, cy, radius float64, col game.RGBA) {
	u, v := font.SolidUV()
	c := rgba(col)
	x0, y0 := float32(cx), float32(cy)
	for i := 0; i < circleSegments; i++ {
		a0 := 2 * math.Pi * float64(i) / circleSegments
		a1 := 2 * math.Pi * float64(i+1) / circleSegments
		b.vertex(x0, y0, u, v, c)
		b.vertex(float32(cx+radius*math.Cos(a0)), float32(cy+radius*math.Sin(a0)), u, v, c)
		b.vertex(float32(cx+radius*math.Cos(a1)), float32(cy+radius*math.Sin(a1)), u, v, c)
	}
}

// char queues a single glyph. Control characters are skipped.
func (b *batch) char(ch rune, sx, sy, scale float32, col game.RGB) {
	if ch < 32 {
		return
	}
	u0, v0, u1, v1 := font.UV(ch)
	w := float32(font.CellW) * scale
	h := float32(font.CellH) * scale
	b.quad(sx, sy, w, h, u0, v0, u1, v1, rgba(col.Opaque()))
}

// text queues a string at screen pixel position (sx, sy) with given scale.
func (b *batch) text(text string, sx, sy int, scale float32, col game.RGB) {
	advance := float32(font.CellW) * scale
	lineAdvance := float32(font.CellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		b.char(ch, x, y, scale, col)
		x += advance
	}
}

func rgba(c game.RGBA) [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}
