package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"confgrid/internal/checker"
	"confgrid/internal/frames"
	"confgrid/internal/geom"
	"confgrid/internal/logging"
	"confgrid/internal/render"
	"confgrid/internal/tui"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLogger(newLogger(os.Stderr, cfg.Verbose))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg appConfig) error {
	board := checker.DefaultConfig()
	board.Sectors = cfg.Sectors
	if err := board.Validate(); err != nil {
		return err
	}

	offsets := frames.Offsets(cfg.Frames, cfg.Span)
	if cfg.Keyframes != "" {
		var err error
		if offsets, err = frames.LoadOffsetsCSV(cfg.Keyframes); err != nil {
			return err
		}
	}
	vp := geom.Square(cfg.Extent)

	if cfg.TUI {
		opts := tui.DefaultOptions()
		opts.Config = board
		opts.Offsets = offsets
		opts.Viewport = vp
		opts.SnapshotDir = cfg.OutDir
		opts.SnapshotRes = cfg.Resolution
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
		_, err := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx)).Run()
		return err
	}
	return sweep(ctx, cfg, board, offsets, vp)
}

// sweep renders every offset into the output directory and optionally
// assembles the frames into a GIF.
func sweep(ctx context.Context, cfg appConfig, board checker.Config, offsets []float64, vp geom.Viewport) error {
	var r render.Renderer = render.Nop{}
	if !cfg.Dry {
		r = &render.Raster{Outline: color.Black, Supersample: cfg.Supersample, FocusRadius: 2}
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
	}
	logger := logging.Logger()
	logger.Info("sweep started", "frames", len(offsets), "resolution", cfg.Resolution, "sectors", board.Sectors, "out", cfg.OutDir)

	results, err := frames.Map(ctx, offsets, cfg.Workers, func(_ context.Context, i int, off float64) (image.Image, error) {
		b, err := checker.Frame(off, board)
		if err != nil {
			return nil, err
		}
		img, err := r.Render(b, vp, cfg.Resolution)
		if err != nil || img == nil {
			return img, err
		}
		base := filepath.Join(cfg.OutDir, fmt.Sprintf("frame-%03d", i))
		if err := render.SavePNG(base+".png", img); err != nil {
			return nil, err
		}
		if cfg.SVG {
			if err := writeSVG(base+".svg", b, vp, cfg.Resolution); err != nil {
				return nil, err
			}
		}
		return img, nil
	})

	if cfg.GIF != "" && !cfg.Dry {
		if gerr := writeGIF(cfg.GIF, frames.Values(results), cfg.Delay); gerr != nil {
			err = errors.Join(err, gerr)
		} else {
			logger.Info("gif written", "path", cfg.GIF)
		}
	}
	return err
}

func writeSVG(path string, b checker.Board, vp geom.Viewport, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, b, vp, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGIF(path string, imgs []image.Image, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodeGIF(f, imgs, delay); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
