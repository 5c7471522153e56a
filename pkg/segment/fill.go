package segment

import (
	"fmt"
	"iter"
	"math"

	"segfill/pkg/geometry"
)

// Samples returns the points spaced evenly along the segment's path, at most
// separation apart, always including the first and last point. The step is
// L/ceil(L/separation) for a path of length L, so the last gap is never a
// degenerate sliver. With corners set every polyline piece is sampled on its
// own so each vertex is emitted too.
//
// The sequence is finite and may be ranged over any number of times. Samples
// panics if separation is not positive.
func (s *Segment) Samples(separation float64, corners bool) iter.Seq[geometry.Point] {
	if !(separation > 0) || math.IsInf(separation, 0) {
		panic(fmt.Sprintf("segment: point separation %v must be positive", separation))
	}
	line := s.points
	return func(yield func(geometry.Point) bool) {
		if len(line) == 0 || !yield(line[0]) {
			return
		}
		if !corners {
			walk(line, separation, yield)
			return
		}
		for i := 1; i < len(line); i++ {
			if !walk(line[i-1:i+1], separation, yield) {
				return
			}
		}
	}
}

// walk yields the points after line[0] at even arc-length steps of at most
// separation, ending with the last point. It returns false if yield asked to
// stop.
func walk(line geometry.Polyline, separation float64, yield func(geometry.Point) bool) bool {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += line[i-1].Distance(line[i])
	}
	if total == 0 {
		return true
	}

	// The epsilon keeps an exact multiple of separation from gaining a step.
	steps := max(1, int(math.Ceil(total/separation-1e-9)))
	step := total / float64(steps)

	i := 1
	pieceStart := 0.0
	for k := 1; k < steps; k++ {
		target := step * float64(k)
		for i < len(line)-1 && pieceStart+line[i-1].Distance(line[i]) < target {
			pieceStart += line[i-1].Distance(line[i])
			i++
		}
		t := 0.0
		if d := line[i-1].Distance(line[i]); d > 0 {
			t = min(max((target-pieceStart)/d, 0), 1)
		}
		if !yield(line[i-1].Lerp(line[i], t)) {
			return false
		}
	}
	return yield(line[len(line)-1])
}

// FillPoints returns the sample points of every segment, in segment order, with
// the separation and corner filling of cfg. The segments are not modified. It
// panics if cfg.PointSeparation is not positive.
func FillPoints(segments []*Segment, cfg Config) []geometry.Point {
	var points []geometry.Point
	for _, seg := range segments {
		for p := range seg.Samples(cfg.PointSeparation, cfg.FillCorners) {
			points = append(points, p)
		}
	}
	return points
}
