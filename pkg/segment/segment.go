package segment

import (
	"segfill/pkg/geometry"
)

// ID identifies a segment within one scan. IDs index the scan's segment arena
// and are never reused during a scan.
type ID int32

// NoSegment marks a row that no segment owns.
const NoSegment ID = -1

// Segment is one traced line: a polyline in the coordinate space of the
// scanned image, so a sub image yields points offset by its bounds origin.
// The x coordinates strictly increase.
type Segment struct {
	id        ID
	points    geometry.Polyline
	length    float64
	lastX     int // scan column of the last point
	byproduct bool
	cut       bool
	closed    bool
}

func newSegment(id ID, x int, p geometry.Point, byproduct bool) *Segment {
	return &Segment{
		id:        id,
		points:    geometry.Polyline{p},
		lastX:     x,
		byproduct: byproduct,
	}
}

func (s *Segment) ID() ID {
	return s.id
}

// Polyline returns the segment's points. The slice must not be modified.
func (s *Segment) Polyline() geometry.Polyline {
	return s.points
}

// Length returns the path length of the segment.
func (s *Segment) Length() float64 {
	return s.length
}

func (s *Segment) Start() geometry.Point {
	return s.points[0]
}

func (s *Segment) End() geometry.Point {
	return s.points[len(s.points)-1]
}

// Byproduct reports whether the segment was created or cut short by a fold
// rather than tracing a line from its own start.
func (s *Segment) Byproduct() bool {
	return s.byproduct
}

// Closed reports whether the scan has finalized the segment.
func (s *Segment) Closed() bool {
	return s.closed
}

// available reports whether a run in column x may continue the segment.
func (s *Segment) available(x int) bool {
	return s != nil && !s.cut && !s.closed && s.lastX < x
}

func (s *Segment) appendColumn(x int, p geometry.Point) {
	s.length += s.points[len(s.points)-1].Distance(p)
	s.points = append(s.points, p)
	s.lastX = x
}

// close finalizes the segment, folding interior vertices that lie within
// tolerance of the simplified path. It returns the number of folded vertices.
func (s *Segment) close(tolerance float64) int {
	s.closed = true
	if len(s.points) < 3 {
		return 0
	}
	before := len(s.points)
	s.points = s.points.Simplify(tolerance)
	if tolerance > 0 {
		s.length = s.points.Length()
	}
	return before - len(s.points)
}

// arena owns every segment of a scan. Discarded segments leave a nil slot so
// IDs stay stable.
type arena struct {
	segments []*Segment
}

func (a *arena) create(x int, p geometry.Point, byproduct bool) *Segment {
	s := newSegment(ID(len(a.segments)), x, p, byproduct)
	a.segments = append(a.segments, s)
	return s
}

func (a *arena) get(id ID) *Segment {
	if id < 0 || int(id) >= len(a.segments) {
		return nil
	}
	return a.segments[id]
}

func (a *arena) discard(id ID) {
	a.segments[id] = nil
}

// result returns the surviving segments in creation order.
func (a *arena) result() []*Segment {
	var out []*Segment
	for _, s := range a.segments {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
