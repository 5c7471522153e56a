package imageio

import (
	"fmt"
	"image"
	"image/color"
)

// FromPixels wraps a raw pixel buffer, as handed out by pdf.js, in an image.
// At 1 bit per pixel every row starts on a byte boundary and a set bit is
// white. At 24 or 32 bits per pixel the bytes are RGB or RGBA; alpha is
// ignored.
func FromPixels(data []byte, width, height, bitsPerPixel int) (image.Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("imageio: bad pixel buffer size %dx%d", width, height)
	}
	switch bitsPerPixel {
	case 1:
		stride := (width + 7) / 8
		if len(data) < stride*height {
			return nil, fmt.Errorf("imageio: pixel buffer has %d bytes, want %d", len(data), stride*height)
		}
		img := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			row := data[y*stride:]
			for x := 0; x < width; x++ {
				if row[x/8]&(1<<(7-x%8)) != 0 {
					img.Pix[y*img.Stride+x] = 0xff
				}
			}
		}
		return img, nil
	case 24, 32:
		step := bitsPerPixel / 8
		if len(data) < step*width*height {
			return nil, fmt.Errorf("imageio: pixel buffer has %d bytes, want %d", len(data), step*width*height)
		}
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for i := 0; i < width*height; i++ {
			img.SetNRGBA(i%width, i/width, color.NRGBA{
				R: data[i*step],
				G: data[i*step+1],
				B: data[i*step+2],
				A: 0xff,
			})
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, bitsPerPixel)
}
