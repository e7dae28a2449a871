package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/motif"
)

func testRenderer(format string) renderer {
	return renderer{format: format, size: 32, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestWriteFrame(t *testing.T) {
	dir := t.TempDir()
	f := motif.New(motif.DefaultConfig(), motif.NewRand(1)).Frame(0.2, motif.Motion{})

	svg := filepath.Join(dir, "f.svg")
	if err := testRenderer("svg").writeFrame(svg, f); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(svg)
	if !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("svg output starts with %q", data[:min(len(data), 10)])
	}

	png := filepath.Join(dir, "f.png")
	if err := testRenderer("png").writeFrame(png, f); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(png)
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("png output has no PNG signature")
	}

	if err := testRenderer("gif").writeFrame(filepath.Join(dir, "f.gif"), f); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestWriteSweepPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	frames := motif.RecordSweep(motif.DefaultConfig(), func() motif.Rand { return motif.NewRand(1) }, motif.Clockwise, 100*time.Millisecond)
	if err := testRenderer("png").writeSweep(context.Background(), dir, frames); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(frames) {
		t.Errorf("wrote %d files for %d frames", len(entries), len(frames))
	}
}

func TestWriteSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := []motif.Frame{{}}
	err := testRenderer("png").writeSweep(ctx, filepath.Join(t.TempDir(), "x"), frames)
	if err == nil {
		t.Error("cancelled sweep returned nil")
	}
}
