// Package render draws motif and raindrop frames onto concrete surfaces:
// SVG markup for the page and PNG rasters through gogpu/gg.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Jheathc1/jhWebsite/internal/motif"
)

const svgNS = "http://www.w3.org/2000/svg"

// SVGSurface keeps the latest motif frame and writes it as an SVG document.
type SVGSurface struct {
	// IDPrefix namespaces gradient ids when several motifs share a page.
	IDPrefix string

	mu    sync.Mutex
	frame motif.Frame
	drawn bool
}

func (s *SVGSurface) Clear() {
	s.mu.Lock()
	s.frame, s.drawn = motif.Frame{}, false
	s.mu.Unlock()
}

func (s *SVGSurface) Draw(f motif.Frame) {
	s.mu.Lock()
	s.frame, s.drawn = f, true
	s.mu.Unlock()
}

// WriteTo writes the latest frame. An undrawn surface writes an empty
// SVG so the decoration degrades to nothing.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	f, drawn := s.frame, s.drawn
	s.mu.Unlock()

	var buf bytes.Buffer
	if !drawn {
		fmt.Fprintf(&buf, `<svg xmlns="%s" viewBox="0 0 400 400"></svg>`, svgNS)
	} else {
		WriteFrameSVG(&buf, f, s.IDPrefix)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// WriteFrameSVG renders a single frame. Gradient ids start with idPrefix,
// which must be unique among SVGs inlined into one document.
func WriteFrameSVG(b *bytes.Buffer, f motif.Frame, idPrefix string) {
	size := fmtNum(f.ViewSize)
	fmt.Fprintf(b, `<svg xmlns="%s" viewBox="0 0 %s %s" class="motif">`, svgNS, size, size)
	writeDefs(b, f, idPrefix)
	fmt.Fprintf(b, `<g transform="%s" opacity="%s">`, containerTransform(f, f.Scale), fmtNum(f.Opacity))
	writeCenter(b, f, idPrefix)
	for _, p := range f.Paths {
		fmt.Fprintf(b, `<path d="%s" stroke="url(#%s%s)" stroke-width="%s" fill="none" stroke-linecap="round"/>`,
			p.Segment.PathData(), idPrefix, p.ID, fmtNum(p.StrokeWidth))
	}
	b.WriteString(`</g></svg>`)
}

// WriteAnimatedSVG renders a frame sequence as one SVG whose path data,
// container scale and opacity are SMIL keyframes played over duration.
// Gradients come from the first frame; a sequence never changes trails.
// idPrefix is as for WriteFrameSVG.
func WriteAnimatedSVG(w io.Writer, frames []motif.Frame, duration time.Duration, idPrefix string) error {
	var b bytes.Buffer
	if len(frames) == 0 {
		fmt.Fprintf(&b, `<svg xmlns="%s" viewBox="0 0 400 400"></svg>`, svgNS)
		_, err := w.Write(b.Bytes())
		return err
	}

	first := frames[0]
	dur := strconv.FormatFloat(duration.Seconds(), 'f', 3, 64) + "s"
	size := fmtNum(first.ViewSize)

	fmt.Fprintf(&b, `<svg xmlns="%s" viewBox="0 0 %s %s" class="motif motif-sweep">`, svgNS, size, size)
	writeDefs(&b, first, idPrefix)

	scales := make([]string, len(frames))
	opacities := make([]string, len(frames))
	for i, f := range frames {
		scales[i] = fmtNum(f.Scale)
		opacities[i] = fmtNum(f.Opacity)
	}
	c := first.Center
	fmt.Fprintf(&b, `<g transform="%s" opacity="%s">`, containerTransform(first, first.Scale), fmtNum(first.Opacity))
	// Scale about the center: translate to it, scale, translate back.
	fmt.Fprintf(&b, `<animateTransform attributeName="transform" type="translate" values="%s %s" dur="%s" fill="freeze"/>`,
		fmtNum(c.X), fmtNum(c.Y), dur)
	fmt.Fprintf(&b, `<animateTransform attributeName="transform" type="scale" additive="sum" values="%s" dur="%s" fill="freeze"/>`,
		strings.Join(scales, ";"), dur)
	fmt.Fprintf(&b, `<animateTransform attributeName="transform" type="translate" additive="sum" values="%s %s" dur="%s" fill="freeze"/>`,
		fmtNum(-c.X), fmtNum(-c.Y), dur)
	fmt.Fprintf(&b, `<animate attributeName="opacity" values="%s" dur="%s" fill="freeze"/>`,
		strings.Join(opacities, ";"), dur)

	writeCenter(&b, first, idPrefix)
	for i, p := range first.Paths {
		values := make([]string, 0, len(frames))
		for _, f := range frames {
			if i < len(f.Paths) {
				values = append(values, f.Paths[i].Segment.PathData())
			}
		}
		fmt.Fprintf(&b, `<path d="%s" stroke="url(#%s%s)" stroke-width="%s" fill="none" stroke-linecap="round">`,
			p.Segment.PathData(), idPrefix, p.ID, fmtNum(p.StrokeWidth))
		fmt.Fprintf(&b, `<animate attributeName="d" values="%s" dur="%s" fill="freeze"/></path>`,
			strings.Join(values, ";"), dur)
	}
	b.WriteString(`</g></svg>`)

	_, err := w.Write(b.Bytes())
	return err
}

func writeDefs(b *bytes.Buffer, f motif.Frame, idPrefix string) {
	b.WriteString(`<defs>`)
	writeGradient(b, idPrefix+"motif-center", f.CenterStops)
	for _, p := range f.Paths {
		writeGradient(b, idPrefix+p.ID, p.Stops)
	}
	b.WriteString(`</defs>`)
}

func writeGradient(b *bytes.Buffer, id string, stops []motif.Stop) {
	fmt.Fprintf(b, `<linearGradient id="%s">`, id)
	for _, s := range stops {
		fmt.Fprintf(b, `<stop offset="%s%%" stop-color="%s" stop-opacity="%s"/>`,
			fmtNum(s.Offset), hex(s.Color), fmtNum(s.Opacity))
	}
	b.WriteString(`</linearGradient>`)
}

func writeCenter(b *bytes.Buffer, f motif.Frame, idPrefix string) {
	if f.CenterRadius <= 0 {
		return
	}
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="url(#%smotif-center)"/>`,
		fmtNum(f.Center.X), fmtNum(f.Center.Y), fmtNum(f.CenterRadius), idPrefix)
}

// containerTransform scales about the view center.
func containerTransform(f motif.Frame, scale float64) string {
	c := f.Center
	return fmt.Sprintf("translate(%s %s) scale(%s) translate(%s %s)",
		fmtNum(c.X), fmtNum(c.Y), fmtNum(scale), fmtNum(-c.X), fmtNum(-c.Y))
}

func hex(c colorful.Color) string { return strings.ToUpper(c.Clamped().Hex()) }

func fmtNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}
