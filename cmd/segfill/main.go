// Command segfill traces the lines of plot images and writes them, with sample
// points spaced along each line, as SVG, CSV or JSON.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"segfill/pkg/cfg"
	"segfill/pkg/filter"
	"segfill/pkg/segment"

	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON settings file")
		outputDir  = flag.String("o", "", "output directory (default \".\")")
		overlay    = flag.String("overlay", "", "also write an overlay image: png or webp")
		workers    = flag.Int("workers", 0, "images scanned in parallel (default: number of CPUs)")
		separation = flag.Float64("sep", 0, "sample point separation in pixels")
		corners    = flag.Bool("corners", false, "emit a sample point at every corner")
		formats    = flag.String("formats", "", "comma separated output formats: svg, csv, json")
		verbose    = flag.Bool("v", false, "log scan diagnostics")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings := cfg.Defaults()
	if *configPath != "" {
		var err error
		settings, err = cfg.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "segfill: %v\n", err)
			os.Exit(1)
		}
	}
	flags := cfg.Flags{
		PointSeparation: *separation,
		OutputDir:       *outputDir,
		Overlay:         *overlay,
		Workers:         *workers,
		FillCorners:     *corners,
	}
	if *formats != "" {
		flags.Formats = strings.Split(*formats, ",")
	}
	settings.Resolve(flags)

	job, err := newJob(settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "segfill: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "segfill: %v\n", err)
		os.Exit(1)
	}

	// Each image gets its own Factory; failures are reported and the batch
	// goes on.
	var g errgroup.Group
	g.SetLimit(settings.Workers)
	var failed atomic.Int32
	for _, path := range flag.Args() {
		g.Go(func() error {
			if err := job.process(path); err != nil {
				logger.Error("scan failed", "image", path, "err", err)
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	if n := failed.Load(); n > 0 {
		fmt.Fprintf(os.Stderr, "segfill: %d of %d images failed\n", n, flag.NArg())
		os.Exit(1)
	}
}

// newJob checks the resolved settings once for the whole batch.
func newJob(settings cfg.Settings, logger *slog.Logger) (*job, error) {
	classifier, err := filter.FromSettings(settings)
	if err != nil {
		return nil, err
	}
	segCfg := segment.FromSettings(settings)
	if err := segCfg.Validate(); err != nil {
		return nil, err
	}
	for _, format := range settings.Formats {
		if _, ok := writers[format]; !ok {
			return nil, fmt.Errorf("unknown output format %q", format)
		}
	}
	switch settings.Overlay {
	case "", "png", "webp":
	default:
		return nil, fmt.Errorf("unknown overlay format %q", settings.Overlay)
	}
	return &job{
		settings:   settings,
		cfg:        segCfg,
		classifier: classifier,
		logger:     logger,
	}, nil
}
