//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"segfill/pkg/imageio"
	"segfill/pkg/segment"
)

func main() {
	js.Global().Set("goSegmentFill", js.FuncOf(goSegmentFill))
	<-make(chan any)
}

// goSegmentFill is the entry point to segment filling from JavaScript. It takes
// the pixel data, width, height, bits per pixel and, optionally, the point
// separation, and returns the sample points as a Float64Array of x, y pairs.
func goSegmentFill(this js.Value, args []js.Value) any {
	image := args[0]
	width := args[1].Int()
	height := args[2].Int()
	bitsPerPixel := args[3].Int()

	data := make([]byte, image.Length())
	js.CopyBytesToGo(data, image)

	img, err := imageio.FromPixels(data, width, height, bitsPerPixel)
	if err != nil {
		fmt.Printf("Error! %s\n", err)
		return nil
	}
	data = nil

	cfg := segment.DefaultConfig()
	if len(args) > 4 && args[4].Type() == js.TypeNumber {
		cfg.PointSeparation = args[4].Float()
	}
	f := segment.NewFactory()
	segments, err := f.MakeSegments(img, cfg)
	if err != nil {
		fmt.Printf("Error! %s\n", err)
		return nil
	}
	points := f.FillPoints(cfg)
	fmt.Printf("Segment fill: %dx%d, %d segments, %d points\n", width, height, len(segments), len(points))

	out := js.Global().Get("Float64Array").New(2 * len(points))
	for i, p := range points {
		out.SetIndex(2*i, p.X)
		out.SetIndex(2*i+1, p.Y)
	}
	return out
}
