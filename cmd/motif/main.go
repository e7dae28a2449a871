// Command motif renders the orbital motif offline: a PNG or SVG frame at
// a progress value, or the transition sweep as an animated SVG or a PNG
// sequence.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/motif"
	"github.com/Jheathc1/jhWebsite/internal/render"
)

func main() {
	mode := flag.String("mode", "frame", "frame or sweep")
	format := flag.String("format", "svg", "svg or png")
	out := flag.String("o", "motif", "output file, or directory for a png sweep")
	progress := flag.Float64("progress", 0, "progress in [0,1] for -mode frame")
	seed := flag.Uint64("seed", 1, "color seed")
	layers := flag.Int("layers", 8, "number of rings")
	size := flag.Int("size", 400, "png edge length in pixels")
	fps := flag.Int("fps", 60, "sweep frame rate")
	ccw := flag.Bool("ccw", false, "sweep counter-clockwise")
	verbose := flag.Bool("v", false, "verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `motif - render the orbital motif

Usage:
  motif -mode frame -progress 0.4 -format png -o frame.png
  motif -mode sweep -format svg -o sweep.svg
  motif -mode sweep -format png -o frames/

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := motif.DefaultConfig()
	cfg.TotalLayers = *layers
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -fps must be positive")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newRand := func() motif.Rand { return motif.NewRand(*seed) }
	r := renderer{format: *format, size: *size, log: log}

	var err error
	switch *mode {
	case "frame":
		f := motif.New(cfg, newRand()).Frame(*progress, motif.Motion{})
		err = r.writeFrame(*out, f)
	case "sweep":
		dir := motif.Clockwise
		if *ccw {
			dir = motif.CounterClockwise
		}
		frames := motif.RecordSweep(cfg, newRand, dir, time.Second/time.Duration(*fps))
		err = r.writeSweep(ctx, *out, frames)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type renderer struct {
	format string
	size   int
	log    *slog.Logger
}

func (r renderer) writeFrame(path string, f motif.Frame) error {
	var buf bytes.Buffer
	switch r.format {
	case "svg":
		render.WriteFrameSVG(&buf, f, "")
	case "png":
		surface := render.NewRasterSurface(r.size)
		defer surface.Close()
		surface.Draw(f)
		if err := surface.EncodePNG(&buf); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", r.format)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	r.log.Info("wrote frame", "path", path, "bytes", buf.Len())
	return nil
}

func (r renderer) writeSweep(ctx context.Context, path string, frames []motif.Frame) error {
	if r.format == "svg" {
		var buf bytes.Buffer
		if err := render.WriteAnimatedSVG(&buf, frames, motif.DefaultTransitionDuration, ""); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
		r.log.Info("wrote sweep", "path", path, "frames", len(frames))
		return nil
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return err
	}
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := filepath.Join(path, fmt.Sprintf("sweep_%03d.%s", i, r.format))
		if err := r.writeFrame(name, f); err != nil {
			return err
		}
	}
	return nil
}
