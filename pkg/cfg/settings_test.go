package cfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"segfill/pkg/cfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	err := os.WriteFile(path, []byte(`{
		"point_separation": 12.5,
		"line_width": 3,
		"formats": ["csv", "json"]
	}`), 0o644)
	require.NoError(t, err)

	s, err := cfg.Load(path)
	require.NoError(t, err)

	s.Resolve(cfg.Flags{Workers: 2})

	assert.Equal(t, 12.5, s.PointSeparation)
	assert.Equal(t, 3, s.LineWidth)
	assert.Equal(t, []string{"csv", "json"}, s.Formats)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, cfg.MinSegmentLength, s.MinSegmentLength)
	assert.Equal(t, cfg.AdjacencyMargin, s.AdjacencyMargin)
	assert.Equal(t, "foreground", s.FilterMode)
	assert.Equal(t, ".", s.OutputDir)
}

func TestExplicitZerosSurvive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	err := os.WriteFile(path, []byte(`{"min_segment_length": 0, "adjacency_margin": 0}`), 0o644)
	require.NoError(t, err)

	s, err := cfg.Load(path)
	require.NoError(t, err)
	s.Resolve(cfg.Flags{})

	assert.Zero(t, s.MinSegmentLength)
	assert.Zero(t, s.AdjacencyMargin)
	assert.Equal(t, cfg.PointSeparation, s.PointSeparation)
	assert.Equal(t, cfg.RunLengthFactor, s.RunLengthFactor)
	assert.Equal(t, 127, s.IntensityHigh)
	assert.Equal(t, []string{"svg"}, s.Formats)
}

func TestDefaults(t *testing.T) {
	s := cfg.Defaults()
	resolved := s
	resolved.Resolve(cfg.Flags{})
	assert.Equal(t, s, resolved)
	assert.Equal(t, cfg.MinSegmentLength, s.MinSegmentLength)
	assert.Equal(t, cfg.AdjacencyMargin, s.AdjacencyMargin)
	assert.Positive(t, s.Workers)
}

func TestFlagsOverrideFile(t *testing.T) {
	s := cfg.Settings{PointSeparation: 40, OutputDir: "out"}
	s.Resolve(cfg.Flags{PointSeparation: 5, OutputDir: "elsewhere", FillCorners: true, Formats: []string{"json"}})

	assert.Equal(t, 5.0, s.PointSeparation)
	assert.Equal(t, []string{"json"}, s.Formats)
	assert.Equal(t, "elsewhere", s.OutputDir)
	assert.True(t, s.FillCorners)
}

func TestLoadErrors(t *testing.T) {
	_, err := cfg.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = cfg.Load(path)
	require.ErrorContains(t, err, "parse")
}
