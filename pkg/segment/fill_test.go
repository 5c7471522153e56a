package segment

import (
	"math"
	"slices"
	"testing"

	"segfill/pkg/geometry"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func polySegment(points ...geometry.Point) *Segment {
	line := geometry.Polyline(points)
	return &Segment{points: line, length: line.Length(), closed: true}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestSamplesEvenSteps(t *testing.T) {
	seg := polySegment(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0})
	tests := []struct {
		separation float64
		want       []geometry.Point
	}{
		{3, []geometry.Point{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 5, Y: 0}, {X: 7.5, Y: 0}, {X: 10, Y: 0}}},
		{5, []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}},
		{10, []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		{25, []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
	}
	for _, test := range tests {
		got := slices.Collect(seg.Samples(test.separation, false))
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("separation %v: incorrect samples: %s", test.separation, diff)
		}
	}
}

func TestSamplesCount(t *testing.T) {
	seg := polySegment(
		geometry.Point{X: 0, Y: 4},
		geometry.Point{X: 3, Y: 4},
		geometry.Point{X: 6, Y: 1},
		geometry.Point{X: 9, Y: 4},
		geometry.Point{X: 12, Y: 4})
	for _, separation := range []float64{0.5, 1, 2, 3.3, 7, 14, 100} {
		got := slices.Collect(seg.Samples(separation, false))
		want := int(math.Floor(seg.Length()/separation)) + 1
		if len(got) < want || len(got) > want+1 {
			t.Errorf("separation %v: %d samples, want %d or %d", separation, len(got), want, want+1)
		}
		if got[0] != seg.Start() || got[len(got)-1] != seg.End() {
			t.Errorf("separation %v: samples must start and end at the segment ends", separation)
		}
		for i := 1; i < len(got); i++ {
			if d := got[i-1].Distance(got[i]); d > separation+1e-9 {
				t.Errorf("separation %v: samples %v and %v are %v apart", separation, got[i-1], got[i], d)
			}
		}
	}
}

func TestSamplesFollowPath(t *testing.T) {
	seg := polySegment(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 4, Y: 0},
		geometry.Point{X: 4, Y: 4})
	got := slices.Collect(seg.Samples(2, false))
	want := []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 4, Y: 4}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("incorrect samples around a corner: %s", diff)
	}
}

func TestSamplesCorners(t *testing.T) {
	seg := polySegment(
		geometry.Point{X: 0, Y: 4},
		geometry.Point{X: 3, Y: 4},
		geometry.Point{X: 6, Y: 1},
		geometry.Point{X: 9, Y: 4},
		geometry.Point{X: 12, Y: 4})

	got := slices.Collect(seg.Samples(10, true))
	if diff := cmp.Diff([]geometry.Point(seg.Polyline()), got, approx); diff != "" {
		t.Errorf("corner filling must emit every vertex: %s", diff)
	}

	got = slices.Collect(seg.Samples(10, false))
	if len(got) != 3 {
		t.Errorf("without corner filling got %d samples, want 3", len(got))
	}
}

func TestSamplesSinglePoint(t *testing.T) {
	seg := polySegment(geometry.Point{X: 3, Y: 7})
	got := slices.Collect(seg.Samples(1, false))
	if diff := cmp.Diff([]geometry.Point{{X: 3, Y: 7}}, got); diff != "" {
		t.Errorf("incorrect samples of a single point segment: %s", diff)
	}
}

func TestSamplesRestartable(t *testing.T) {
	seg := polySegment(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 9, Y: 3})
	seq := seg.Samples(2, false)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second iteration differs: %s", diff)
	}

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break yielded %d points", n)
	}
}

func TestSamplesPanicsOnBadSeparation(t *testing.T) {
	seg := polySegment(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 0})
	for _, separation := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Samples(%v) did not panic", separation)
				}
			}()
			seg.Samples(separation, false)
		}()
	}
}

func TestFillPointsLeavesSegments(t *testing.T) {
	a := polySegment(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 0})
	b := polySegment(geometry.Point{X: 0, Y: 5}, geometry.Point{X: 2, Y: 5})
	before := []geometry.Polyline{slices.Clone(a.points), slices.Clone(b.points)}

	cfg := DefaultConfig()
	cfg.PointSeparation = 2
	got := FillPoints([]*Segment{a, b}, cfg)

	want := []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 5}, {X: 2, Y: 5}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("incorrect fill points: %s", diff)
	}
	after := []geometry.Polyline{a.points, b.points}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("FillPoints modified segments: %s", diff)
	}
}
