package veil

import "image/color"

// Color is an RGBA color with components in [0, 1]. Not premultiplied;
// premultiplication happens at conversion or draw time.
//
// Color is the simplest built-in sink attribute: its alpha channel receives
// the effective opacity. Register it with RegisterFader.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is fully opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ApplyOpacity sets the alpha channel, leaving RGB untouched.
func (c *Color) ApplyOpacity(opacity float64) {
	c.A = opacity
}

// ToRGBA converts to a premultiplied 8-bit color.RGBA, suitable for
// image fills.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
