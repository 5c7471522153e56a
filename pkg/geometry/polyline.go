package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

type Polyline []Point

// LineString converts the polyline to an orb.LineString.
func (line Polyline) LineString() orb.LineString {
	ls := make(orb.LineString, len(line))
	for i, p := range line {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// FromLineString converts an orb.LineString back to a polyline.
func FromLineString(ls orb.LineString) Polyline {
	line := make(Polyline, len(ls))
	for i, p := range ls {
		line[i] = Point{X: p.X(), Y: p.Y()}
	}
	return line
}

// Length returns the total path length of the polyline.
func (line Polyline) Length() float64 {
	if len(line) < 2 {
		return 0
	}
	return planar.Length(line.LineString())
}

// Bounds returns the bounding rectangle of the polyline's vertices.
func (line Polyline) Bounds() Rectangle {
	r := Rectangle{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range line {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

func (line Polyline) EndpointDistance(p Point) float64 {
	if len(line) == 0 {
		return math.NaN()
	}
	d := line[0].Distance(p)
	if len(line) > 1 {
		d = math.Min(d, line[len(line)-1].Distance(p))
	}
	return d
}

// Distance returns the distance from p to the nearest point on the polyline.
func (line Polyline) Distance(p Point) float64 {
	switch len(line) {
	case 0:
		return math.NaN()
	case 1:
		return line[0].Distance(p)
	}
	d := math.Inf(1)
	for i := 1; i < len(line); i++ {
		d = math.Min(d, LineSegment{A: line[i-1], B: line[i]}.Distance(p))
	}
	return d
}

// Simplify simplifies the polyline using the Douglas-Peucker algorithm. Interior
// vertices closer than epsilon to the simplified path are dropped; with an epsilon
// of zero only exactly collinear vertices go. The receiver is not modified.
func (line Polyline) Simplify(epsilon float64) Polyline {
	if len(line) < 3 {
		return append(Polyline(nil), line...)
	}

	simplified := simplify.DouglasPeucker(epsilon).Simplify(line.LineString())
	ls, ok := simplified.(orb.LineString)
	if !ok {
		return append(Polyline(nil), line...)
	}
	return FromLineString(ls)
}
