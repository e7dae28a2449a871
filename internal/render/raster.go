package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Jheathc1/jhWebsite/internal/motif"
)

// ErrNothingDrawn is returned when encoding a surface that has no frame.
var ErrNothingDrawn = errors.New("render: nothing drawn")

// RasterSurface paints motif frames into a square pixel buffer with the
// gg software renderer.
type RasterSurface struct {
	Size int // edge length in pixels

	mu    sync.Mutex
	dc    *gg.Context
	drawn bool
	err   error // first paint error of the current frame
}

// NewRasterSurface returns a surface of size x size pixels.
func NewRasterSurface(size int) *RasterSurface {
	return &RasterSurface{Size: size}
}

func (r *RasterSurface) context() *gg.Context {
	if r.dc == nil {
		size := r.Size
		if size <= 0 {
			size = 400
		}
		r.dc = gg.NewContext(size, size)
	}
	return r.dc
}

func (r *RasterSurface) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.context().Clear()
	r.drawn, r.err = false, nil
}

// Draw replaces the buffer contents with f.
func (r *RasterSurface) Draw(f motif.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dc := r.context()
	dc.Clear()
	r.err = paintFrame(dc, f)
	r.drawn = true
}

// EncodePNG writes the current buffer, or returns the error that stopped
// the last Draw.
func (r *RasterSurface) EncodePNG(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.drawn {
		return ErrNothingDrawn
	}
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *RasterSurface) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}

// paintFrame works in pixel space directly: the container scale is
// folded into radii and widths because gg's arc helper transforms only
// the center point.
func paintFrame(dc *gg.Context, f motif.Frame) error {
	if f.ViewSize <= 0 || f.Opacity <= 0 {
		return nil
	}
	k := float64(dc.Width()) / f.ViewSize
	s := k * f.Scale
	cx, cy := f.Center.X*k, f.Center.Y*k

	dc.SetLineCap(gg.LineCapRound)
	for _, p := range f.Paths {
		seg := p.Segment
		r := seg.Radius * s
		x0, y0 := cx+r*math.Cos(seg.TailAngle), cy+r*math.Sin(seg.TailAngle)
		x1, y1 := cx+r*math.Cos(seg.HeadAngle), cy+r*math.Sin(seg.HeadAngle)

		dc.SetStrokeBrush(gradient(x0, y0, x1, y1, p.Stops, f.Opacity))
		dc.SetLineWidth(p.StrokeWidth * s)
		dc.ClearPath()
		dc.DrawArc(cx, cy, r, seg.TailAngle, seg.HeadAngle)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: stroke %s: %w", p.ID, err)
		}
	}

	if f.CenterRadius > 0 {
		cr := f.CenterRadius * s
		dc.SetFillBrush(gradient(cx-cr, cy, cx+cr, cy, f.CenterStops, f.Opacity))
		dc.ClearPath()
		dc.DrawCircle(cx, cy, cr)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: fill center: %w", err)
		}
	}
	return nil
}

func gradient(x0, y0, x1, y1 float64, stops []motif.Stop, opacity float64) *gg.LinearGradientBrush {
	g := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, st := range stops {
		g.AddColorStop(st.Offset/100, rgba(st.Color, st.Opacity*opacity))
	}
	return g
}

func rgba(c colorful.Color, alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: math.Max(0, math.Min(1, alpha))}
}
