// Package font provides the embedded bitmap font used for all in-game text.
//
// The atlas is laid out like a classic ASCII sheet: Cols x Rows cells of
// CellW x CellH pixels, glyph c at column c%Cols, row c/Cols. Cell 0 is
// filled solid so untextured shapes can sample it.
package font

import (
	"image"
	"image/color"
	"unicode"
)

// Atlas layout (32 cols x 4 rows, ASCII 0-127).
const (
	GlyphW = 5
	GlyphH = 7
	CellW  = GlyphW + 1
	CellH  = GlyphH + 1
	Cols   = 32
	Rows   = 4
	AtlasW = CellW * Cols // 192
	AtlasH = CellH * Rows // 32
)

// SolidRune is the atlas cell that is fully opaque.
const SolidRune rune = 0

// Normalize maps r to the rune whose bitmap is drawn for it.
func Normalize(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return unicode.ToUpper(r)
	}
	if _, ok := glyphs[r]; ok {
		return r
	}
	return '?'
}

// Cell returns the atlas cell of r after normalisation.
func Cell(r rune) (col, row int) {
	if r != SolidRune {
		r = Normalize(r)
	}
	return int(r) % Cols, int(r) / Cols
}

// UV returns the texture coordinates of r's cell.
func UV(r rune) (u0, v0, u1, v1 float32) {
	col, row := Cell(r)
	u0 = float32(col*CellW) / float32(AtlasW)
	v0 = float32(row*CellH) / float32(AtlasH)
	u1 = float32((col+1)*CellW) / float32(AtlasW)
	v1 = float32((row+1)*CellH) / float32(AtlasH)
	return
}

// SolidUV returns a texture coordinate inside the solid cell.
func SolidUV() (u, v float32) {
	u0, v0, u1, v1 := UV(SolidRune)
	return (u0 + u1) / 2, (v0 + v1) / 2
}

// Atlas renders every glyph white-on-transparent into a new image.
func Atlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasW, AtlasH))
	ink := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	for y := 0; y < CellH; y++ {
		for x := 0; x < CellW; x++ {
			img.SetNRGBA(x, y, ink)
		}
	}
	for r, rows := range glyphs {
		col, row := Cell(r)
		ox, oy := col*CellW, row*CellH
		for y, line := range rows {
			for x := 0; x < GlyphW && x < len(line); x++ {
				if line[x] == '#' {
					img.SetNRGBA(ox+x, oy+y, ink)
				}
			}
		}
	}
	return img
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*CellW) * scale)
}

// TextHeight returns the height in screen pixels of a string at given scale.
func TextHeight(text string, scale float32) int {
	lines := 1
	for _, ch := range text {
		if ch == '\n' {
			lines++
		}
	}
	return int(float32(lines*CellH) * scale)
}
