package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/pongclassic/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert the grayscale range to an index in asciiChars
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// Luminosity weights for RGB components
const (
	RFactor = 0.2126
	GFactor = 0.7152
	BFactor = 0.0722
)

const ansiReset = "\033[0m"

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel utils.RGBPixel) uint8 {
	gray := RFactor*float64(pixel.R) + GFactor*float64(pixel.G) + BFactor*float64(pixel.B)
	return uint8(math.Round(utils.Clamp(gray, 0, 255)))
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) byte {
	index := int(math.Round(float64(gray) / grayFactor))
	if index >= len(asciiChars) {
		index = len(asciiChars) - 1
	}
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel utils.RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII samples a row-major grid of pixels into resolution columns and
// a proportional number of rows. Every sample is written twice so cells look
// square in a terminal.
func RenderToASCII(pixels [][]utils.RGBPixel, resolution int) string {
	height := len(pixels)
	if height == 0 || resolution <= 0 {
		return ""
	}
	width := len(pixels[0])
	if width == 0 {
		return ""
	}

	step := float64(width) / float64(resolution)
	if step < 1 {
		step = 1
	}

	var ascii strings.Builder
	for y := 0.0; y < float64(height); y += step {
		row := pixels[int(y)]
		for x := 0.0; x < float64(width); x += step {
			pixel := row[int(x)]
			char := string(grayToAscii(rgbToGray(pixel)))
			ansi := rgbToAnsi(pixel)
			ascii.WriteString(ansi + char + char + ansiReset)
		}
		ascii.WriteString("\r\n")
	}
	return ascii.String()
}
