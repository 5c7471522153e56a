package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"segfill/pkg/cfg"
	"segfill/pkg/export"
	"segfill/pkg/filter"
	"segfill/pkg/geometry"
	"segfill/pkg/imageio"
	"segfill/pkg/overlay"
	"segfill/pkg/segment"
)

type job struct {
	settings   cfg.Settings
	cfg        segment.Config
	classifier filter.Classifier
	logger     *slog.Logger
}

// scanned is everything written for one image.
type scanned struct {
	name     string
	img      image.Image
	segments []*segment.Segment
	points   []geometry.Point
	stats    segment.Stats
	cfg      segment.Config
}

var writers = map[string]func(io.Writer, *scanned) error{
	"svg": func(w io.Writer, s *scanned) error {
		b := s.img.Bounds()
		return export.WriteSVG(w, b.Dx(), b.Dy(), s.segments, s.points, export.DefaultSVGOptions)
	},
	"csv": func(w io.Writer, s *scanned) error {
		return export.WriteCSV(w, s.segments, s.cfg)
	},
	"json": func(w io.Writer, s *scanned) error {
		b := s.img.Bounds()
		return export.WriteJSON(w, export.NewResult(s.name, b.Dx(), b.Dy(), s.segments, s.stats, s.cfg))
	},
}

// process scans the image at path and writes every configured output next to
// each other in the output directory.
func (j *job) process(path string) error {
	img, format, err := imageio.Load(path)
	if err != nil {
		return err
	}

	logger := j.logger.With("image", path)
	f := segment.NewFactory(
		segment.WithClassifier(j.classifier),
		segment.WithLogger(logger))
	segments, err := f.MakeSegments(img, j.cfg)
	if err != nil {
		return err
	}

	s := &scanned{
		name:     filepath.Base(path),
		img:      img,
		segments: segments,
		points:   f.FillPoints(j.cfg),
		stats:    f.Stats(),
		cfg:      j.cfg,
	}
	stem := filepath.Join(j.settings.OutputDir, strings.TrimSuffix(s.name, filepath.Ext(s.name)))

	for _, ext := range j.settings.Formats {
		if err := writeFile(stem+"."+ext, func(w io.Writer) error {
			return writers[ext](w, s)
		}); err != nil {
			return err
		}
	}
	if ext := j.settings.Overlay; ext != "" {
		out := overlay.Render(img, segments, s.points, overlay.DefaultOptions)
		if err := writeFile(stem+".overlay."+ext, func(w io.Writer) error {
			return overlay.Encode(w, out, ext)
		}); err != nil {
			return err
		}
	}

	logger.Info("scanned",
		"format", format,
		"segments", len(segments),
		"points", len(s.points))
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
