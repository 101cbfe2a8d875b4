package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"confgrid/internal/frames"
)

type appConfig struct {
	Frames      int
	Span        float64
	Resolution  int
	Sectors     int
	Workers     int
	Extent      float64
	Supersample int
	Delay       int

	OutDir    string
	GIF       string
	SVG       bool
	Keyframes string
	Dry       bool

	TUI     bool
	Verbose bool
}

func defaultConfig() appConfig {
	return appConfig{
		Frames:      40,
		Span:        frames.DefaultSpan,
		Resolution:  200,
		Sectors:     6,
		Extent:      6,
		Supersample: 1,
		Delay:       8,
		OutDir:      "frames",
	}
}

func parseFlags(args []string, stderr io.Writer) (appConfig, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("confgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "number of frames in the sweep")
	fs.Float64Var(&cfg.Span, "span", cfg.Span, "angular span of the sweep in radians")
	fs.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "output size in pixels (square)")
	fs.IntVar(&cfg.Sectors, "sectors", cfg.Sectors, "number of angular sectors")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "frames rendered in parallel (0 = GOMAXPROCS)")
	fs.Float64Var(&cfg.Extent, "extent", cfg.Extent, "half width of the square viewport")
	fs.IntVar(&cfg.Supersample, "supersample", cfg.Supersample, "render at this multiple of the resolution and scale down")
	fs.IntVar(&cfg.Delay, "delay", cfg.Delay, "GIF frame delay in 100ths of a second")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for frame images")
	fs.StringVar(&cfg.GIF, "gif", cfg.GIF, "write the sweep as an animated GIF to this path")
	fs.BoolVar(&cfg.SVG, "svg", cfg.SVG, "also write the boundaries of every frame as SVG")
	fs.StringVar(&cfg.Keyframes, "keyframes", cfg.Keyframes, "CSV file with an offset column, replaces -frames/-span")
	fs.BoolVar(&cfg.Dry, "dry", cfg.Dry, "build every frame without rendering or writing")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "open the interactive terminal viewer")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}
	if fs.NArg() > 0 {
		return appConfig{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	var errs []error
	if c.Frames < 1 {
		errs = append(errs, fmt.Errorf("-frames must be at least 1, got %d", c.Frames))
	}
	if c.Resolution < 2 {
		errs = append(errs, fmt.Errorf("-resolution must be at least 2, got %d", c.Resolution))
	}
	if c.Sectors < 1 {
		errs = append(errs, fmt.Errorf("-sectors must be at least 1, got %d", c.Sectors))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("-workers must not be negative, got %d", c.Workers))
	}
	if !(c.Extent > 0) {
		errs = append(errs, fmt.Errorf("-extent must be positive, got %v", c.Extent))
	}
	if c.Supersample < 1 {
		errs = append(errs, fmt.Errorf("-supersample must be at least 1, got %d", c.Supersample))
	}
	return errors.Join(errs...)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
