// Package overlay draws traced segments and sample points over the image they
// were traced from, for checking a scan by eye.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"segfill/pkg/geometry"
	"segfill/pkg/segment"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

var ErrUnknownFormat = errors.New("overlay: unknown output format")

type Options struct {
	// Scale enlarges the output so single pixel traces stay visible.
	Scale int
	// Fade is the opacity of the white wash laid over the source image.
	Fade           uint8
	StrokeWidth    float32
	PointRadius    float32
	SegmentColor   color.Color
	ByproductColor color.Color
	PointColor     color.Color
}

var DefaultOptions = Options{
	Scale:          2,
	Fade:           160,
	StrokeWidth:    1.5,
	PointRadius:    2.5,
	SegmentColor:   color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	ByproductColor: color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	PointColor:     color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
}

// Render returns a copy of src enlarged by opts.Scale with the segments
// stroked and the points drawn as dots on top.
func Render(src image.Image, segments []*segment.Segment, points []geometry.Point, opts Options) *image.RGBA {
	scale := max(1, opts.Scale)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	if opts.Fade > 0 {
		wash := image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: opts.Fade})
		draw.Draw(dst, dst.Bounds(), wash, image.Point{}, draw.Over)
	}

	p := &painter{
		dst:    dst,
		r:      vector.NewRasterizer(0, 0),
		scale:  float32(scale),
		origin: b.Min,
	}
	half := opts.StrokeWidth * p.scale / 2
	for _, seg := range segments {
		c := opts.SegmentColor
		if seg.Byproduct() {
			c = opts.ByproductColor
		}
		line := seg.Polyline()
		for i, v := range line {
			p.dot(v, half, c)
			if i > 0 {
				p.piece(line[i-1], v, half, c)
			}
		}
	}
	for _, pt := range points {
		p.dot(pt, opts.PointRadius*p.scale, opts.PointColor)
	}
	return dst
}

type painter struct {
	dst    *image.RGBA
	r      *vector.Rasterizer
	scale  float32
	origin image.Point
	poly   [][2]float32
}

// at maps the center of source pixel pt to output coordinates.
func (p *painter) at(pt geometry.Point) (float32, float32) {
	x := float32(pt.X) - float32(p.origin.X)
	y := float32(pt.Y) - float32(p.origin.Y)
	return (x + 0.5) * p.scale, (y + 0.5) * p.scale
}

// fill paints the polygon collected in p.poly, rasterizing only the pixels
// under its bounding box.
func (p *painter) fill(c color.Color) {
	defer func() { p.poly = p.poly[:0] }()
	if len(p.poly) == 0 {
		return
	}
	minX, minY := p.poly[0][0], p.poly[0][1]
	maxX, maxY := minX, minY
	for _, v := range p.poly[1:] {
		minX, maxX = min(minX, v[0]), max(maxX, v[0])
		minY, maxY = min(minY, v[1]), max(maxY, v[1])
	}
	rect := image.Rect(
		int(math.Floor(float64(minX)))-1, int(math.Floor(float64(minY)))-1,
		int(math.Ceil(float64(maxX)))+1, int(math.Ceil(float64(maxY)))+1,
	).Intersect(p.dst.Bounds())
	if rect.Empty() {
		return
	}

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	p.r.Reset(rect.Dx(), rect.Dy())
	for i, v := range p.poly {
		if i == 0 {
			p.r.MoveTo(v[0]-ox, v[1]-oy)
		} else {
			p.r.LineTo(v[0]-ox, v[1]-oy)
		}
	}
	p.r.ClosePath()
	p.r.Draw(p.dst, rect, image.NewUniform(c), image.Point{})
}

// piece fills the rectangle of half width half around the line from a to b.
func (p *painter) piece(a, b geometry.Point, half float32, c color.Color) {
	ax, ay := p.at(a)
	bx, by := p.at(b)
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	p.poly = append(p.poly,
		[2]float32{ax + nx, ay + ny},
		[2]float32{bx + nx, by + ny},
		[2]float32{bx - nx, by - ny},
		[2]float32{ax - nx, ay - ny},
	)
	p.fill(c)
}

// dot fills a regular polygon close enough to a circle at this size.
func (p *painter) dot(pt geometry.Point, radius float32, c color.Color) {
	const sides = 12
	cx, cy := p.at(pt)
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / sides
		p.poly = append(p.poly, [2]float32{
			cx + radius*float32(math.Cos(angle)),
			cy + radius*float32(math.Sin(angle)),
		})
	}
	p.fill(c)
}

// Encode writes img as "png" or lossless "webp".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("overlay: webp encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
