package utils

import "image/color"

type RGBPixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGBFromFloats builds a pixel from channel intensities in [0, 1].
func NewRGBFromFloats(r, g, b float64) RGBPixel {
	return RGBPixel{R: floatToChannel(r), G: floatToChannel(g), B: floatToChannel(b)}
}

func floatToChannel(value float64) uint8 {
	return uint8(Clamp(value, 0, 1)*255 + 0.5)
}

func (p RGBPixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}
