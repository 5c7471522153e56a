package segment

import (
	"math"
	"sort"

	"segfill/pkg/geometry"

	"github.com/asim/quadtree"
)

// Locator finds the segment under a cursor position. Every segment is sampled
// at a fixed spacing and the samples are indexed in a quadtree, so long
// straight segments with only two vertices are still found in their middle.
type Locator struct {
	quadTree *quadtree.QuadTree
	spacing  float64
}

// NewLocator indexes segments with samples at most spacing apart.
func NewLocator(segments []*Segment, spacing float64) *Locator {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		b := seg.points.Bounds()
		minX = math.Min(minX, b.Min.X)
		minY = math.Min(minY, b.Min.Y)
		maxX = math.Max(maxX, b.Max.X)
		maxY = math.Max(maxY, b.Max.Y)
	}
	if len(segments) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	midX := (maxX + minX) / 2
	midY := (maxY + minY) / 2

	// Add a small margin to avoid dropping points at the edges
	halfWidth := maxX - midX + 10
	halfHeight := maxY - midY + 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	l := &Locator{
		quadTree: quadtree.New(aabb, 0, nil),
		spacing:  spacing,
	}
	for _, seg := range segments {
		for p := range seg.Samples(spacing, true) {
			l.quadTree.Insert(quadtree.NewPoint(p.X, p.Y, seg))
		}
	}
	return l
}

// Within returns the segments passing within r of p, nearest first. Segments
// at equal distance are ordered by ID.
func (l *Locator) Within(p geometry.Point, r float64) []*Segment {
	// A path within r of p has a sample within r plus half the spacing.
	reach := r + l.spacing
	near := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(reach, reach, nil))

	seen := map[*Segment]float64{}
	for _, point := range l.quadTree.Search(near) {
		seg := point.Data().(*Segment)
		if _, ok := seen[seg]; ok {
			continue
		}
		seen[seg] = seg.points.Distance(p)
	}

	var found []*Segment
	for seg, d := range seen {
		if d <= r {
			found = append(found, seg)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		di, dj := seen[found[i]], seen[found[j]]
		if di != dj {
			return di < dj
		}
		return found[i].id < found[j].id
	})
	return found
}

// Nearest returns the segment closest to p, if one passes within maxDist.
func (l *Locator) Nearest(p geometry.Point, maxDist float64) (*Segment, bool) {
	found := l.Within(p, maxDist)
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}
