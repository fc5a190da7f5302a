// Package render converts dense state-code buffers into color buffers by
// direct palette lookup. This is the performance-critical path between the
// automaton and a pixel matrix, so the fill loops branch only on the code
// value itself.
package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FillRGBA expands cell codes into 4-byte RGBA pixels using the palette.
// buf must hold 4*len(cells) bytes. A code outside the palette indicates a
// rule wrote an undefined state and panics via the slice index.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		col := palette[c]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillRGB expands cell codes into packed 3-byte RGB pixels, the layout a
// matrix driver consumes. buf must hold 3*len(cells) bytes.
func FillRGB(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		col := palette[c]
		base := i * 3
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
	}
}

// Dim returns a copy of the palette scaled to the given brightness in
// [0, 1], mirroring a matrix panel's brightness control. Values outside the
// range are clamped; alpha passes through.
func Dim(palette []color.RGBA, brightness float64) []color.RGBA {
	if brightness < 0 {
		brightness = 0
	}
	out := make([]color.RGBA, len(palette))
	if brightness >= 1 {
		copy(out, palette)
		return out
	}
	for i, col := range palette {
		h, s, v := colorful.Color{
			R: float64(col.R) / 255,
			G: float64(col.G) / 255,
			B: float64(col.B) / 255,
		}.Hsv()
		scaled := colorful.Hsv(h, s, v*brightness).Clamped()
		r, g, b := scaled.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: col.A}
	}
	return out
}
