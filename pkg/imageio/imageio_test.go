package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"segfill/pkg/imageio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(1, 1, color.Black)
	img.Set(2, 1, color.Black)
	return img
}

func TestLoad(t *testing.T) {
	encoders := map[string]func(io.Writer, image.Image) error{
		"png":  png.Encode,
		"bmp":  bmp.Encode,
		"tiff": func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
	}
	dir := t.TempDir()
	for format, encode := range encoders {
		var buf bytes.Buffer
		require.NoError(t, encode(&buf, testImage()), format)
		path := filepath.Join(dir, "plot."+format)
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		img, got, err := imageio.Load(path)
		require.NoError(t, err, format)
		assert.Equal(t, format, got)
		assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds(), format)

		r, g, b, _ := img.At(1, 1).RGBA()
		assert.Zero(t, r|g|b, "%s: pixel (1, 1) is not black", format)
		r, g, b, _ = img.At(0, 0).RGBA()
		assert.Equal(t, uint32(0xffff), r&g&b, "%s: pixel (0, 0) is not white", format)
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	img, format, err := imageio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	r, g, b, _ := img.At(2, 1).RGBA()
	assert.Zero(t, r|g|b)
}

// tgaImage is an uncompressed 24-bit TGA of two pixels, black then white,
// with a version 2 footer.
func tgaImage() []byte {
	header := []byte{
		0,          // id length
		0,          // no color map
		2,          // uncompressed true color
		0, 0, 0, 0, // color map spec
		0,
		0, 0, 0, 0, // origin
		2, 0, // width
		1, 0, // height
		24,   // bits per pixel
		0x20, // top-left origin
	}
	img := append(header, 0, 0, 0, 0xff, 0xff, 0xff)
	img = append(img, make([]byte, 8)...) // no extension or developer area
	return append(img, "TRUEVISION-XFILE.\x00"...)
}

func TestDecodeTGA(t *testing.T) {
	img, format, err := imageio.Decode(bytes.NewReader(tgaImage()))
	require.NoError(t, err)
	assert.Equal(t, "tga", format)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())

	path := filepath.Join(t.TempDir(), "plot.TGA")
	require.NoError(t, os.WriteFile(path, tgaImage(), 0o644))
	img, format, err = imageio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tga", format)
	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := imageio.Load(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, imageio.ErrUnsupported)

	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image at all"), 0o644))
	_, _, err = imageio.Load(path)
	assert.ErrorIs(t, err, imageio.ErrUnsupported)
}
