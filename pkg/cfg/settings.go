package cfg

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Settings holds the user-facing segment fill settings and output options.
type Settings struct {
	// Segment detection
	PointSeparation  float64 `json:"point_separation"`
	MinSegmentLength float64 `json:"min_segment_length"`
	MinTraceLength   float64 `json:"min_trace_length"`
	LineWidth        int     `json:"line_width"`
	RunLengthFactor  float64 `json:"run_length_factor"`
	SmoothTolerance  float64 `json:"smooth_tolerance"`
	AdjacencyMargin  int     `json:"adjacency_margin"`
	FillCorners      bool    `json:"fill_corners"`

	// Filtering
	FilterMode          string  `json:"filter_mode"`
	ForegroundThreshold float64 `json:"foreground_threshold"`
	IntensityLow        int     `json:"intensity_low"`
	IntensityHigh       int     `json:"intensity_high"`

	// Output
	OutputDir string   `json:"output_dir"`
	Formats   []string `json:"formats"`
	Overlay   string   `json:"overlay"`
	Workers   int      `json:"workers"`
}

// Flags holds CLI flag values that override settings file values.
type Flags struct {
	PointSeparation float64
	OutputDir       string
	Overlay         string
	Workers         int
	FillCorners     bool
	Formats         []string
}

// Defaults returns the settings used when no settings file is given.
func Defaults() Settings {
	return Settings{
		PointSeparation:     PointSeparation,
		MinSegmentLength:    MinSegmentLength,
		MinTraceLength:      MinTraceLength,
		LineWidth:           LineWidth,
		RunLengthFactor:     RunLengthFactor,
		SmoothTolerance:     SmoothTolerance,
		AdjacencyMargin:     AdjacencyMargin,
		FillCorners:         FillCorners,
		FilterMode:          "foreground",
		ForegroundThreshold: ForegroundThreshold,
		IntensityHigh:       127,
		OutputDir:           ".",
		Formats:             []string{"svg"},
		Workers:             runtime.NumCPU(),
	}
}

// Load reads a JSON settings file over Defaults. Fields absent from the file
// keep their default, so an explicit zero in the file is kept as zero.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("cfg: read %s: %w", path, err)
	}

	s := Defaults()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("cfg: parse %s: %w", path, err)
	}

	return s, nil
}

// Resolve applies CLI overrides. Fields that have no meaningful zero value
// fall back to their defaults; zero lengths, widths, tolerances and margins
// are legitimate settings and are left alone.
func (s *Settings) Resolve(flags Flags) {
	if flags.PointSeparation > 0 {
		s.PointSeparation = flags.PointSeparation
	}
	if flags.OutputDir != "" {
		s.OutputDir = flags.OutputDir
	}
	if flags.Overlay != "" {
		s.Overlay = flags.Overlay
	}
	if flags.Workers > 0 {
		s.Workers = flags.Workers
	}
	if flags.FillCorners {
		s.FillCorners = true
	}
	if len(flags.Formats) > 0 {
		s.Formats = flags.Formats
	}

	if s.PointSeparation <= 0 {
		s.PointSeparation = PointSeparation
	}
	if s.RunLengthFactor <= 0 {
		s.RunLengthFactor = RunLengthFactor
	}
	if s.FilterMode == "" {
		s.FilterMode = "foreground"
	}
	if s.OutputDir == "" {
		s.OutputDir = "."
	}
	if len(s.Formats) == 0 {
		s.Formats = []string{"svg"}
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
}
