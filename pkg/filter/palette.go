package filter

import "image/color"

// Color is a restricted, canonical palette for graph images. Each entry
// covers a color that plotting tools commonly use for a distinct curve, and
// the entries are as visually distinct as possible.
// This is very similar to the 3-bit RGB palette, described at
// https://en.wikipedia.org/wiki/List_of_monochrome_and_RGB_color_formats#3-bit_RGB,
// but with the following changes:
// * Gray as an added color (in the center of the color cube)
// * Yellow shifted toward orange to better distinguish it from white
// * Cyan darkened and shifted toward blue to better distinguish it from green
// * Magenta darkened to better distinguish it from red
type Color byte

const (
	White Color = iota
	Black
	Gray
	Red
	Green
	Blue
	Magenta
	Cyan
	Orange
)

const numColors = int(Orange) + 1

var Palette = color.Palette{
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // Black
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // Gray
	color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // Red
	color.RGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}, // Green
	color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // Blue
	color.RGBA{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // Magenta
	color.RGBA{R: 0x00, G: 0xbb, B: 0xdd, A: 0xff}, // Cyan
	color.RGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}, // Orange
}

var colorNames = map[string]Color{
	"white":   White,
	"black":   Black,
	"gray":    Gray,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"orange":  Orange,
}

// ParseColor returns the palette entry with the given lower case name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

func min3(a, b, c byte) byte {
	if c < b {
		b = c
	}
	if b < a {
		a = b
	}
	return a
}

func max3(a, b, c byte) byte {
	if b < a {
		b = a
	}
	if c < b {
		c = b
	}
	return c
}

// lightness is the HSL lightness of an 8-bit RGB color.
func lightness(r, g, b byte) byte {
	// divide each separately before adding to avoid byte overflow
	return max3(r, g, b)/2 + min3(r, g, b)/2
}

// RemapColor remaps an RGB color, expressed as r, g, and b components, to a Color.
func RemapColor(r, g, b byte) Color {
	min := min3(r, g, b)
	max := max3(r, g, b)
	lightness := max/2 + min/2

	// Most pixels are expected to be white, so check for white first
	if lightness >= 192 {
		return White
	}

	// Black is expected to be second most common
	if lightness < 32 {
		return Black
	}

	chroma := max - min

	if lightness < 86 {
		// Only this pixel's chroma is checked; JPEG smearing can make a dark
		// colored pixel look black here.
		if chroma <= max/2 {
			return Black
		}
	}

	mid := min/2 + max/2

	if chroma < 8 {
		return Gray
	} else if r == max {
		if b < mid {
			// For yellow tones, shift slightly toward orange because
			// yellow is hard to distinguish from white
			if g < 90 {
				return Red
			} else {
				return Orange
			}
		} else {
			return Magenta
		}
	} else if g == max {
		if b < mid {
			if r < mid {
				return Green
			} else {
				return Orange
			}
		} else {
			return Cyan
		}
	} else {
		// Otherwise, blue is max
		if r < mid {
			if g < mid {
				return Blue
			} else {
				return Cyan
			}
		} else {
			return Magenta
		}
	}
}
