package filter_test

import (
	"image"
	"image/color"
	"testing"

	"segfill/pkg/cfg"
	"segfill/pkg/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnImage(colors ...color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, len(colors)))
	for y, c := range colors {
		img.Set(0, y, c)
	}
	return img
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
	gray  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

func TestBinary(t *testing.T) {
	img := columnImage(white, black, gray, white)
	dst := make([]bool, 4)
	filter.Binary{}.Column(img, 0, white, dst)
	assert.Equal(t, []bool{false, true, true, false}, dst)
}

func TestForeground(t *testing.T) {
	img := columnImage(white, black, gray, red)
	dst := make([]bool, 4)
	filter.Foreground{Threshold: 0.5}.Column(img, 0, white, dst)
	assert.Equal(t, []bool{false, true, false, true}, dst)
}

func TestIntensity(t *testing.T) {
	img := columnImage(white, black, gray, red)
	dst := make([]bool, 4)
	filter.Intensity{Low: 0, High: 100}.Column(img, 0, white, dst)
	assert.Equal(t, []bool{false, true, false, false}, dst)
}

func TestPaletteFilter(t *testing.T) {
	img := columnImage(white, black, red, red)
	dst := make([]bool, 4)
	filter.PaletteFilter{Keep: []filter.Color{filter.Red}}.Column(img, 0, white, dst)
	assert.Equal(t, []bool{false, false, true, true}, dst)
}

func TestColumnHonorsBoundsOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 23))
	for y := 20; y < 23; y++ {
		img.Set(10, y, white)
		img.Set(11, y, white)
	}
	img.Set(11, 21, black)
	dst := make([]bool, 3)
	filter.Binary{}.Column(img, 1, white, dst)
	assert.Equal(t, []bool{false, true, false}, dst)
}

func TestRemapColor(t *testing.T) {
	tests := []struct {
		r, g, b byte
		want    filter.Color
	}{
		{0xff, 0xff, 0xff, filter.White},
		{0, 0, 0, filter.Black},
		{0x80, 0x80, 0x80, filter.Gray},
		{0xff, 0, 0, filter.Red},
		{0, 0xcc, 0, filter.Green},
		{0, 0, 0xff, filter.Blue},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, filter.RemapColor(test.r, test.g, test.b), "rgb(%d,%d,%d)", test.r, test.g, test.b)
	}
}

func TestBackgroundColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, white)
		}
	}
	img.Set(3, 3, black)
	r, g, b, _ := filter.BackgroundColor(img).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	assert.Equal(t, cfg.BackgroundColor, filter.BackgroundColor(image.NewRGBA(image.Rectangle{})))
}

func TestFromSettings(t *testing.T) {
	c, err := filter.FromSettings(cfg.Settings{FilterMode: "red"})
	require.NoError(t, err)
	assert.Equal(t, filter.PaletteFilter{Keep: []filter.Color{filter.Red}}, c)

	c, err = filter.FromSettings(cfg.Settings{FilterMode: "intensity", IntensityLow: -5, IntensityHigh: 300})
	require.NoError(t, err)
	assert.Equal(t, filter.Intensity{Low: 0, High: 255}, c)

	_, err = filter.FromSettings(cfg.Settings{FilterMode: "sepia"})
	require.ErrorIs(t, err, filter.ErrUnknownMode)
}
