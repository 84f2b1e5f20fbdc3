package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB colour with straight (non-premultiplied) alpha.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque returns c with full alpha.
func (c RGB) Opaque() RGBA { return RGBA{R: c.R, G: c.G, B: c.B, A: 255} }

// Alpha returns c with the given alpha.
func (c RGB) Alpha(a uint8) RGBA { return RGBA{R: c.R, G: c.G, B: c.B, A: a} }

var Palette = struct {
	Background RGB
	Text       RGB
	Ball       RGB
	Player1    RGB // paddle 1 and the bottom tint
	Player2    RGB // paddle 2 and the top tint
	Divider    RGB
	Field      RGB
	FieldFocus RGB
}{
	Background: RGB{R: 255, G: 255, B: 255},
	Text:       RGB{R: 0, G: 0, B: 0},
	Ball:       RGB{R: 0, G: 0, B: 0},
	Player1:    RGB{R: 255, G: 0, B: 0},
	Player2:    RGB{R: 0, G: 0, B: 255},
	Divider:    RGB{R: 0, G: 255, B: 0},
	Field:      RGB{R: 225, G: 225, B: 225},
	FieldFocus: RGB{R: 255, G: 236, B: 150},
}
