package svgpath_test

import (
	"testing"

	"segfill/pkg/geometry"
	"segfill/pkg/svgpath"

	"github.com/google/go-cmp/cmp"
)

func TestFromPolyline(t *testing.T) {
	line := geometry.Polyline{{X: 0, Y: 4}, {X: 3, Y: 4}, {X: 6, Y: 1.5}}
	path := svgpath.FromPolyline(line)
	expected := &svgpath.SubPath{X: 0, Y: 4, DrawTo: []*svgpath.DrawTo{
		{Command: svgpath.LineTo, X: 3, Y: 4},
		{Command: svgpath.LineTo, X: 6, Y: 1.5},
	}}
	if diff := cmp.Diff(expected, path); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
	if svgpath.FromPolyline(nil) != nil {
		t.Errorf("empty polyline must give no path")
	}
}

func TestToString(t *testing.T) {
	groups := []*svgpath.SubPath{
		svgpath.FromPolyline(geometry.Polyline{{X: 0, Y: 4}, {X: 12.25, Y: 4}}),
		svgpath.FromPolyline(geometry.Polyline{{X: 1, Y: 1}}),
		svgpath.FromPolyline(geometry.Polyline{{X: 2, Y: 2}, {X: 3, Y: 2.5}, {X: 4, Y: 2}}),
	}
	got := svgpath.ToString(groups)
	expected := "M 0 4 L 12.25 4 M 1 1 L 1 1 M 2 2 L 3 2.5 L 4 2"
	if got != expected {
		t.Errorf("ToString = %q, want %q", got, expected)
	}
	if got := svgpath.ToString(nil); got != "" {
		t.Errorf("ToString(nil) = %q", got)
	}
}
