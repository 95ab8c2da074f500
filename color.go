package vgo

import "image/color"

// Color is a byte RGBA color as stored in vertices. Paint records store
// colors normalized to [0, 1]; the conversion happens once at paint
// construction.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{}
)

// RGB creates an opaque color from byte components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from byte components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Fade returns the color with its alpha scaled by t in [0, 1].
func (c Color) Fade(t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c.A = uint8(float32(c.A) * t)
	return c
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// normalized converts the byte color to the [0, 1] float layout used by
// paint records.
func (c Color) normalized() [4]float32 {
	const s = 1.0 / 255.0
	return [4]float32{
		float32(c.R) * s,
		float32(c.G) * s,
		float32(c.B) * s,
		float32(c.A) * s,
	}
}
