package main

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Jheathc1/jhWebsite/internal/career"
	"github.com/Jheathc1/jhWebsite/internal/decode"
	"github.com/Jheathc1/jhWebsite/internal/motif"
	"github.com/Jheathc1/jhWebsite/internal/raindrop"
	"github.com/Jheathc1/jhWebsite/internal/render"
	"github.com/Jheathc1/jhWebsite/internal/reveal"
	"github.com/Jheathc1/jhWebsite/internal/scroll"
)

const (
	svgContentType = "image/svg+xml"
	maxDecodeRunes = 500
	maxRasterSize  = 1024
	maxRevealCards = 64
)

// motifFile serves /motif/transition.svg, /motif/frame.png,
// /motif/frame.json and /motif/<section>.svg.
func (s *server) motifFile(c *gin.Context) {
	name := c.Param("file")
	switch {
	case name == "transition.svg":
		s.motifTransition(c)
	case name == "frame.png":
		s.motifPNG(c)
	case name == "frame.json":
		s.motifJSON(c)
	case strings.HasSuffix(name, ".svg"):
		s.motifSnapshot(c, strings.TrimSuffix(name, ".svg"))
	default:
		c.String(http.StatusNotFound, "unknown motif resource")
	}
}

// motifSnapshot draws a collapsed panel's motif at a scroll position. The
// panel element's geometry comes in as top/height/vh; the motif runs from
// the element's top entering the viewport bottom to its bottom leaving
// the viewport top.
func (s *server) motifSnapshot(c *gin.Context, panel string) {
	if _, err := career.ParseSection(panel); err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	q, err := parseQuery(c, map[string]float64{"scroll": 0, "top": 0, "height": 400, "vh": 800})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	span, err := scroll.Resolve("top bottom", "bottom top", scroll.Element{Top: q["top"], Height: q["height"]}, q["vh"])
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	newRand, err := randSource(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	render.WriteFrameSVG(&buf, motif.Snapshot(s.motif, newRand, span, q["scroll"]), motifIDPrefix(career.Section(panel)))
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *server) motifTransition(c *gin.Context) {
	dir := motif.Clockwise
	switch c.DefaultQuery("direction", "cw") {
	case "cw", "clockwise":
	case "ccw", "counterclockwise":
		dir = motif.CounterClockwise
	default:
		c.String(http.StatusBadRequest, "direction must be cw or ccw")
		return
	}
	newRand, err := randSource(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	frames := motif.RecordSweep(s.motif, newRand, dir, time.Second/time.Duration(s.cfg.MotifFPS))
	var buf bytes.Buffer
	if err := render.WriteAnimatedSVG(&buf, frames, motif.DefaultTransitionDuration, "transition-"); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *server) motifPNG(c *gin.Context) {
	q, err := parseQuery(c, map[string]float64{"progress": 0, "size": 400})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	size := int(q["size"])
	if size < 16 || size > maxRasterSize {
		c.String(http.StatusBadRequest, fmt.Sprintf("size must be within [16, %d]", maxRasterSize))
		return
	}
	newRand, err := randSource(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	surface := render.NewRasterSurface(size)
	defer surface.Close()
	surface.Draw(motif.New(s.motif, newRand()).Frame(q["progress"], motif.Motion{}))

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		s.log.Error("png encode failed", "err", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// motifJSON returns the declarative scene for client-side renderers.
func (s *server) motifJSON(c *gin.Context) {
	q, err := parseQuery(c, map[string]float64{"progress": 0})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	newRand, err := randSource(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	f := motif.New(s.motif, newRand()).Frame(q["progress"], motif.Motion{})

	paths := make([]gin.H, len(f.Paths))
	for i, p := range f.Paths {
		paths[i] = gin.H{
			"id":           p.ID,
			"d":            p.Segment.PathData(),
			"large_arc":    p.Segment.LargeArc,
			"stroke_width": p.StrokeWidth,
			"stops":        stopsJSON(p.Stops),
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"view_size":     f.ViewSize,
		"center":        gin.H{"x": f.Center.X, "y": f.Center.Y},
		"center_radius": f.CenterRadius,
		"center_stops":  stopsJSON(f.CenterStops),
		"scale":         f.Scale,
		"opacity":       f.Opacity,
		"paths":         paths,
	})
}

func stopsJSON(stops []motif.Stop) []gin.H {
	out := make([]gin.H, len(stops))
	for i, st := range stops {
		out[i] = gin.H{"offset": st.Offset, "color": strings.ToUpper(st.Color.Hex()), "opacity": st.Opacity}
	}
	return out
}

// decodeText returns every frame of the decoding effect for text.
func (s *server) decodeText(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if utf8.RuneCountInString(text) > maxDecodeRunes {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("text longer than %d characters", maxDecodeRunes)})
		return
	}
	line, err := strconv.Atoi(c.DefaultQuery("line", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line must be an integer"})
		return
	}
	seed, seeded, err := seedParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if seeded {
		rng = motif.NewRand(seed)
	}

	c.JSON(http.StatusOK, gin.H{
		"text":        text,
		"placeholder": decode.Placeholder(text),
		"delay_ms":    decode.Delay(line).Milliseconds(),
		"tick_ms":     decode.TickInterval.Milliseconds(),
		"frames":      decode.Frames(text, rng),
	})
}

func (s *server) raindropSVG(c *gin.Context) {
	layout := raindrop.DefaultLayout()
	q, err := parseQuery(c, map[string]float64{"progress": 0, "width": layout.Width})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if q["width"] < 2*layout.PaddingX+raindrop.PanelWidth {
		c.String(http.StatusBadRequest, "width too small for the panels")
		return
	}
	layout.Width = q["width"]
	for i, sk := range s.pages.Get().Skills {
		if i < len(layout.Titles) {
			layout.Titles[i] = sk.Title
		}
	}

	var buf bytes.Buffer
	if err := render.WriteRaindropSVG(&buf, raindrop.NewSequence(layout).FrameAt(q["progress"])); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

// revealCards reports which project cards fire at a scroll position and
// the keyframes to play for them. Cards the browser already revealed are
// passed back in fired so they never fire twice.
func (s *server) revealCards(c *gin.Context) {
	q, err := parseQuery(c, map[string]float64{"scroll": 0, "vh": 800})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tops, err := floatList(c.Query("tops"))
	if err != nil || len(tops) > maxRevealCards {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tops must be up to 64 comma-separated numbers"})
		return
	}
	fired, err := floatList(c.Query("fired"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fired must be comma-separated card indexes"})
		return
	}

	cards, err := reveal.NewCards(tops, q["vh"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, i := range fired {
		cards.MarkFired(int(i))
	}
	fire := cards.Observe(q["scroll"])
	if fire == nil {
		fire = []int{}
	}

	step := time.Second / time.Duration(s.cfg.MotifFPS)
	c.JSON(http.StatusOK, gin.H{
		"fire":    fire,
		"tick_ms": step.Milliseconds(),
		"frames":  reveal.CardFrames(step),
	})
}

// revealSlide returns a skill section's icon strip offset in container
// widths.
func (s *server) revealSlide(c *gin.Context) {
	q, err := parseQuery(c, map[string]float64{"scroll": 0, "top": 0, "height": 0, "vh": 800})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slide, err := reveal.NewSlide(scroll.Element{Top: q["top"], Height: q["height"]}, q["vh"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": slide.XAt(q["scroll"])})
}

func floatList(raw string) ([]float64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%q: not a number", p)
		}
		out[i] = v
	}
	return out, nil
}

// parseQuery reads float query parameters, using defs for the names and
// their defaults.
func parseQuery(c *gin.Context, defs map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(defs))
	for name, def := range defs {
		raw, ok := c.GetQuery(name)
		if !ok || raw == "" {
			out[name] = def
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: not a number", name)
		}
		out[name] = v
	}
	return out, nil
}

func seedParam(c *gin.Context) (uint64, bool, error) {
	raw := c.Query("seed")
	if raw == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("seed: %w", err)
	}
	return seed, true, nil
}

// randSource seeds from ?seed= for reproducible output; otherwise every
// activation draws fresh colors.
func randSource(c *gin.Context) (func() motif.Rand, error) {
	seed, ok, err := seedParam(c)
	if err != nil || !ok {
		return motif.FreeRand, err
	}
	return func() motif.Rand { return motif.NewRand(seed) }, nil
}
