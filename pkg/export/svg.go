package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"segfill/pkg/geometry"
	"segfill/pkg/segment"
	"segfill/pkg/svgpath"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVGXMLNode is one element of a written SVG document.
type SVGXMLNode struct {
	XMLName  xml.Name
	Xmlns    string        `xml:"xmlns,attr,omitempty"`
	Width    string        `xml:"width,attr,omitempty"`
	Height   string        `xml:"height,attr,omitempty"`
	ViewBox  string        `xml:"viewBox,attr,omitempty"`
	Version  string        `xml:"version,attr,omitempty"`
	ID       string        `xml:"id,attr,omitempty"`
	Class    string        `xml:"class,attr,omitempty"`
	Styles   string        `xml:"style,attr,omitempty"`
	D        string        `xml:"d,attr,omitempty"`
	CX       string        `xml:"cx,attr,omitempty"`
	CY       string        `xml:"cy,attr,omitempty"`
	Radius   string        `xml:"r,attr,omitempty"`
	Children []*SVGXMLNode `xml:",any"`
}

// SVGOptions control the look of a written document.
type SVGOptions struct {
	StrokeWidth    float64
	ByproductColor string
	SegmentColor   string
	PointColor     string
	PointRadius    float64
}

var DefaultSVGOptions = SVGOptions{
	StrokeWidth:    1,
	SegmentColor:   "#0000ff",
	ByproductColor: "#ff00ff",
	PointColor:     "#ff0000",
	PointRadius:    1.5,
}

// SVG builds a document of the given pixel size with one path per segment and
// one circle per sample point, in image coordinates.
func SVG(width, height int, segments []*segment.Segment, points []geometry.Point, opts SVGOptions) *SVGXMLNode {
	root := &SVGXMLNode{
		XMLName: xml.Name{Local: "svg"},
		Xmlns:   svgNamespace,
		Version: "1.1",
		Width:   strconv.Itoa(width),
		Height:  strconv.Itoa(height),
		ViewBox: fmt.Sprintf("0 0 %d %d", width, height),
	}

	lines := &SVGXMLNode{XMLName: xml.Name{Local: "g"}, ID: "segments"}
	for _, seg := range segments {
		path := svgpath.FromPolyline(seg.Polyline())
		if path == nil {
			continue
		}
		color, class := opts.SegmentColor, "segment"
		if seg.Byproduct() {
			color, class = opts.ByproductColor, "segment byproduct"
		}
		lines.Children = append(lines.Children, &SVGXMLNode{
			XMLName: xml.Name{Local: "path"},
			ID:      fmt.Sprintf("segment%d", seg.ID()),
			Class:   class,
			Styles: "fill:none;stroke:" + color +
				";stroke-width:" + svgpath.FormatNumber(opts.StrokeWidth) +
				";stroke-linecap:round;stroke-linejoin:round",
			D: svgpath.ToString([]*svgpath.SubPath{path}),
		})
	}
	root.Children = append(root.Children, lines)

	if len(points) > 0 {
		dots := &SVGXMLNode{
			XMLName: xml.Name{Local: "g"},
			ID:      "points",
			Styles:  "fill:" + opts.PointColor + ";stroke:none",
		}
		r := svgpath.FormatNumber(opts.PointRadius)
		for _, p := range points {
			dots.Children = append(dots.Children, &SVGXMLNode{
				XMLName: xml.Name{Local: "circle"},
				CX:      svgpath.FormatNumber(p.X),
				CY:      svgpath.FormatNumber(p.Y),
				Radius:  r,
			})
		}
		root.Children = append(root.Children, dots)
	}

	return root
}

func (n *SVGXMLNode) Marshal() ([]byte, error) {
	data, err := xml.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// WriteSVG writes the document built by SVG to w.
func WriteSVG(w io.Writer, width, height int, segments []*segment.Segment, points []geometry.Point, opts SVGOptions) error {
	data, err := SVG(width, height, segments, points, opts).Marshal()
	if err != nil {
		return fmt.Errorf("export: svg: %w", err)
	}
	_, err = w.Write(data)
	return err
}
