// Package imageio loads raster images of the common formats plus TGA.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var ErrUnsupported = errors.New("imageio: unsupported image format")

type format struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}

// formats is matched in order against the leading bytes of the data; '?'
// matches any byte. The tga package registers itself with image.Decode under
// an empty magic, which would claim every input, so sniffing is done here.
var formats = []format{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8?a", gif.Decode},
	{"bmp", "BM????\x00\x00\x00\x00", bmp.Decode},
	{"tiff", "II\x2a\x00", tiff.Decode},
	{"tiff", "MM\x00\x2a", tiff.Decode},
	{"webp", "RIFF????WEBPVP8", webp.Decode},
}

func match(magic string, raw []byte) bool {
	if len(raw) < len(magic) {
		return false
	}
	for i := 0; i < len(magic); i++ {
		if magic[i] != '?' && magic[i] != raw[i] {
			return false
		}
	}
	return true
}

// Load reads and decodes the image file at path. It returns the image and
// the name of its format.
func Load(path string) (image.Image, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: read %s: %w", path, err)
	}
	var (
		img  image.Image
		name string
	)
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, name, err = decodeTGA(raw)
	} else {
		img, name, err = decode(raw)
	}
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, name, nil
}

// Decode decodes an image from r. Data of an unknown format yields an error
// matching ErrUnsupported.
func Decode(r io.Reader) (image.Image, string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	return decode(raw)
}

// decode falls back to TGA, which has no magic number, only for data no
// other format claims.
func decode(raw []byte) (image.Image, string, error) {
	for _, f := range formats {
		if !match(f.magic, raw) {
			continue
		}
		img, err := f.decode(bytes.NewReader(raw))
		if err != nil {
			return nil, f.name, err
		}
		return img, f.name, nil
	}
	return decodeTGA(raw)
}

func decodeTGA(raw []byte) (image.Image, string, error) {
	img, err := tga.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return img, "tga", nil
}
