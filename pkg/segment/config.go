package segment

import (
	"errors"
	"fmt"
	"math"

	"segfill/pkg/cfg"
)

var ErrInvalidConfig = errors.New("segment: invalid configuration")

// Config holds the segment detection settings. It is read-only for the
// duration of a scan.
type Config struct {
	// LineWidth is the expected trace thickness in pixels. Runs longer than
	// LineWidth*RunLengthFactor are treated as blobs and never become part of
	// a segment. Zero disables the check.
	LineWidth       int
	RunLengthFactor float64

	// MinSegmentLength is the shortest fold byproduct kept after
	// post-processing. MinTraceLength applies to every segment.
	MinSegmentLength float64
	MinTraceLength   float64

	// PointSeparation is the sample point spacing used by FillPoints.
	PointSeparation float64
	FillCorners     bool

	// SmoothTolerance is the distance within which interior vertices of a
	// finished segment are folded away.
	SmoothTolerance float64

	// AdjacencyMargin is the number of rows above and below a run searched in
	// the neighboring columns.
	AdjacencyMargin int
}

// DefaultConfig returns a Config populated from the cfg package defaults.
func DefaultConfig() Config {
	return Config{
		LineWidth:        cfg.LineWidth,
		RunLengthFactor:  cfg.RunLengthFactor,
		MinSegmentLength: cfg.MinSegmentLength,
		MinTraceLength:   cfg.MinTraceLength,
		PointSeparation:  cfg.PointSeparation,
		FillCorners:      cfg.FillCorners,
		SmoothTolerance:  cfg.SmoothTolerance,
		AdjacencyMargin:  cfg.AdjacencyMargin,
	}
}

// FromSettings returns the Config described by resolved settings.
func FromSettings(s cfg.Settings) Config {
	return Config{
		LineWidth:        s.LineWidth,
		RunLengthFactor:  s.RunLengthFactor,
		MinSegmentLength: s.MinSegmentLength,
		MinTraceLength:   s.MinTraceLength,
		PointSeparation:  s.PointSeparation,
		FillCorners:      s.FillCorners,
		SmoothTolerance:  s.SmoothTolerance,
		AdjacencyMargin:  s.AdjacencyMargin,
	}
}

// Validate reports settings that would make a scan or sampling meaningless.
func (c Config) Validate() error {
	switch {
	case !(c.PointSeparation > 0) || math.IsInf(c.PointSeparation, 0):
		return fmt.Errorf("%w: point separation %v must be positive", ErrInvalidConfig, c.PointSeparation)
	case c.LineWidth < 0:
		return fmt.Errorf("%w: negative line width %d", ErrInvalidConfig, c.LineWidth)
	case c.LineWidth > 0 && !(c.RunLengthFactor > 0):
		return fmt.Errorf("%w: run length factor %v must be positive", ErrInvalidConfig, c.RunLengthFactor)
	case c.MinSegmentLength < 0 || c.MinTraceLength < 0:
		return fmt.Errorf("%w: negative minimum length", ErrInvalidConfig)
	case c.SmoothTolerance < 0:
		return fmt.Errorf("%w: negative smoothing tolerance %v", ErrInvalidConfig, c.SmoothTolerance)
	case c.AdjacencyMargin < 0 || c.AdjacencyMargin > 4:
		return fmt.Errorf("%w: adjacency margin %d outside 0..4", ErrInvalidConfig, c.AdjacencyMargin)
	}
	return nil
}

func (c Config) maxRunLength() int {
	if c.LineWidth <= 0 {
		return math.MaxInt
	}
	return int(float64(c.LineWidth) * c.RunLengthFactor)
}
