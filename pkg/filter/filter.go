// Package filter decides which pixels of a graph image belong to the
// foreground. The segment engine consumes it one column at a time.
package filter

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"segfill/pkg/cfg"

	"github.com/chewxy/math32"
)

var ErrUnknownMode = errors.New("filter: unknown mode")

// Classifier fills dst with the foreground flags of column x of img. dst has
// one entry per row of img, relative to img.Bounds().Min.
type Classifier interface {
	Column(img image.Image, x int, background color.Color, dst []bool)
}

// rgb8 returns the 8-bit components of c.
func rgb8(c color.Color) (r, g, b byte) {
	r32, g32, b32, _ := c.RGBA()
	return byte(r32 >> 8), byte(g32 >> 8), byte(b32 >> 8)
}

func column(img image.Image, x int, dst []bool, on func(c color.Color) bool) {
	bounds := img.Bounds()
	px := bounds.Min.X + x
	for y := range dst {
		dst[y] = on(img.At(px, bounds.Min.Y+y))
	}
}

// Binary treats every pixel whose color differs from the background as
// foreground. It suits images that have already been filtered.
type Binary struct{}

func (Binary) Column(img image.Image, x int, background color.Color, dst []bool) {
	br, bg, bb := rgb8(background)
	column(img, x, dst, func(c color.Color) bool {
		r, g, b := rgb8(c)
		return r != br || g != bg || b != bb
	})
}

// Foreground marks pixels whose RGB distance from the background exceeds
// Threshold, normalized so 1 is the distance between black and white.
type Foreground struct {
	Threshold float32
}

var maxDistance = math32.Sqrt(3 * 255 * 255)

func (f Foreground) Column(img image.Image, x int, background color.Color, dst []bool) {
	br, bg, bb := rgb8(background)
	column(img, x, dst, func(c color.Color) bool {
		r, g, b := rgb8(c)
		dr := float32(r) - float32(br)
		dg := float32(g) - float32(bg)
		db := float32(b) - float32(bb)
		return math32.Sqrt(dr*dr+dg*dg+db*db)/maxDistance > f.Threshold
	})
}

// Intensity marks pixels whose lightness lies within [Low, High].
type Intensity struct {
	Low  byte
	High byte
}

func (f Intensity) Column(img image.Image, x int, _ color.Color, dst []bool) {
	column(img, x, dst, func(c color.Color) bool {
		l := lightness(rgb8(c))
		return f.Low <= l && l <= f.High
	})
}

// PaletteFilter marks pixels that remap to one of the Keep colors. This
// isolates one curve of a multi-colored plot.
type PaletteFilter struct {
	Keep []Color
}

func (f PaletteFilter) Column(img image.Image, x int, _ color.Color, dst []bool) {
	var keep [numColors]bool
	for _, c := range f.Keep {
		if int(c) < len(keep) {
			keep[c] = true
		}
	}
	column(img, x, dst, func(c color.Color) bool {
		return keep[RemapColor(rgb8(c))]
	})
}

// BackgroundColor estimates the background reference color of img as the most
// frequent color on a sparse sampling grid. An empty image yields
// cfg.BackgroundColor.
func BackgroundColor(img image.Image) color.Color {
	if img == nil || img.Bounds().Empty() {
		return cfg.BackgroundColor
	}
	b := img.Bounds()
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	hist := map[color.RGBA]int{}
	var best color.RGBA
	bestCount := 0
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			r, g, bl := rgb8(img.At(x, y))
			c := color.RGBA{R: r, G: g, B: bl, A: 0xff}
			hist[c]++
			// Ties keep the color seen first so the result is deterministic.
			if hist[c] > bestCount {
				best = c
				bestCount = hist[c]
			}
		}
	}
	return best
}

// FromSettings builds the classifier selected by s.FilterMode.
func FromSettings(s cfg.Settings) (Classifier, error) {
	switch s.FilterMode {
	case "", "foreground":
		return Foreground{Threshold: float32(s.ForegroundThreshold)}, nil
	case "binary":
		return Binary{}, nil
	case "intensity":
		return Intensity{Low: clampByte(s.IntensityLow), High: clampByte(s.IntensityHigh)}, nil
	default:
		// Any palette color name selects that color.
		if c, ok := ParseColor(s.FilterMode); ok {
			return PaletteFilter{Keep: []Color{c}}, nil
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, s.FilterMode)
	}
}

func clampByte(v int) byte {
	return byte(min(max(v, 0), 255))
}
