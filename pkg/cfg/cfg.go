package cfg

import "image/color"

// PointSeparation is the spacing, in image pixels, between generated sample
// points.
var PointSeparation = 25.0

// MinSegmentLength is the shortest fold byproduct, in pixels of path length,
// that survives post-processing. Genuine traces are never pruned by length.
var MinSegmentLength = 10.0

// MinTraceLength is the shortest segment of any kind kept after
// post-processing. Zero keeps isolated specks as one-point segments.
var MinTraceLength = 0.0

// LineWidth is the expected trace thickness in pixels. Zero disables the
// oversize-run check.
var LineWidth = 0

// RunLengthFactor scales LineWidth into the longest run that is still treated
// as part of a line. Steep curves produce long vertical runs, so this needs
// slack.
var RunLengthFactor = 4.0

// SmoothTolerance is the Douglas-Peucker tolerance used when folding collinear
// vertices of finished segments. Zero only folds exactly collinear points.
var SmoothTolerance = 0.0

// AdjacencyMargin is how many rows above and below a run are searched in the
// neighboring column. One row treats diagonal contact as adjacency.
var AdjacencyMargin = 1

var FillCorners = false

var BackgroundColor = color.White

// ForegroundThreshold is the normalized color distance from the background
// above which a pixel counts as foreground.
var ForegroundThreshold = 0.5
