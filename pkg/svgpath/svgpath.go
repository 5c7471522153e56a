// Package svgpath models SVG path data made of straight pieces and writes it
// as a path "d" attribute.
package svgpath

import (
	"strconv"
	"strings"

	"segfill/pkg/geometry"
)

type SubPath struct {
	X, Y   float64
	DrawTo []*DrawTo
}

type Command string

const LineTo Command = "L"

type DrawTo struct {
	Command Command
	X, Y    float64
}

// FromPolyline returns the sub path through the points of line, or nil for an
// empty line.
func FromPolyline(line geometry.Polyline) *SubPath {
	if len(line) == 0 {
		return nil
	}
	path := &SubPath{X: line[0].X, Y: line[0].Y}
	for _, p := range line[1:] {
		path.DrawTo = append(path.DrawTo, &DrawTo{Command: LineTo, X: p.X, Y: p.Y})
	}
	return path
}

// FormatNumber writes n with the fewest digits that parse back to it.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ToString serializes the sub paths with absolute commands. A sub path with a
// single point is written as a zero length line so renderers still draw a dot.
func ToString(groups []*SubPath) string {
	var buf strings.Builder

	for i, group := range groups {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("M " + FormatNumber(group.X) + " " + FormatNumber(group.Y))
		if len(group.DrawTo) == 0 {
			buf.WriteString(" L " + FormatNumber(group.X) + " " + FormatNumber(group.Y))
		}
		for _, drawTo := range group.DrawTo {
			buf.WriteString(" " + string(drawTo.Command) + " " + FormatNumber(drawTo.X) + " " + FormatNumber(drawTo.Y))
		}
	}

	return buf.String()
}
