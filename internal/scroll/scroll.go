// Package scroll maps page scroll positions to normalized animation
// progress using ScrollTrigger-style start/end anchors.
package scroll

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrBadAnchor is returned when an anchor string cannot be parsed.
var ErrBadAnchor = errors.New("scroll: bad anchor")

// Range is the scroll span over which progress runs from 0 to 1.
type Range struct {
	Start float64
	End   float64
}

// Progress returns (y-Start)/(End-Start) clamped to [0,1]. A degenerate
// range steps from 0 to 1 at Start.
func (r Range) Progress(y float64) float64 {
	span := r.End - r.Start
	if span <= 0 || math.IsNaN(span) {
		if y >= r.Start {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(1, (y-r.Start)/span))
}

// Element is the page geometry of a trigger element.
type Element struct {
	Top    float64
	Height float64
}

// Anchor pins a point on the element to a point on the viewport. The
// scroll position resolves when the two coincide. A relative anchor
// ("+=200") is an offset from the start position instead.
type Anchor struct {
	Element  float64 // 0 = element top, 1 = element bottom
	Viewport float64 // 0 = viewport top, 1 = viewport bottom
	Offset   float64
	Relative bool

	// ViewportShare is a relative offset in viewport heights ("+=150%").
	ViewportShare float64
}

// ScrollY is the scroll position at which the anchor is reached.
func (a Anchor) ScrollY(el Element, viewportHeight float64) float64 {
	return el.Top + a.Element*el.Height - a.Viewport*viewportHeight + a.Offset
}

// ParseAnchor accepts "<element> <viewport>" pairs where each side is
// top, center, bottom or a percentage, optionally followed by -=N or +=N
// ("top bottom-=100"), and the relative forms "+=N" and "+=N%".
func ParseAnchor(s string) (Anchor, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			share, err := parseOffset(pct)
			if err != nil {
				return Anchor{}, err
			}
			return Anchor{ViewportShare: share / 100, Relative: true}, nil
		}
		off, err := parseOffset(s)
		if err != nil {
			return Anchor{}, err
		}
		return Anchor{Offset: off, Relative: true}, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Anchor{}, fmt.Errorf("%w: %q", ErrBadAnchor, s)
	}
	el, elOff, err := parseEdge(fields[0])
	if err != nil {
		return Anchor{}, err
	}
	vp, vpOff, err := parseEdge(fields[1])
	if err != nil {
		return Anchor{}, err
	}
	// An offset on the viewport side moves the viewport line, which
	// shifts the resolved scroll position the opposite way.
	return Anchor{Element: el, Viewport: vp, Offset: elOff - vpOff}, nil
}

// Resolve turns start/end anchor strings into a Range for an element.
func Resolve(start, end string, el Element, viewportHeight float64) (Range, error) {
	sa, err := ParseAnchor(start)
	if err != nil {
		return Range{}, err
	}
	if sa.Relative {
		return Range{}, fmt.Errorf("%w: start %q cannot be relative", ErrBadAnchor, start)
	}
	ea, err := ParseAnchor(end)
	if err != nil {
		return Range{}, err
	}
	r := Range{Start: sa.ScrollY(el, viewportHeight)}
	if ea.Relative {
		r.End = r.Start + ea.Offset + ea.ViewportShare*viewportHeight
	} else {
		r.End = ea.ScrollY(el, viewportHeight)
	}
	return r, nil
}

func parseEdge(s string) (float64, float64, error) {
	var off float64
	if i := strings.IndexAny(s, "+-"); i > 0 {
		o, err := parseOffset(s[i:])
		if err != nil {
			return 0, 0, err
		}
		off, s = o, s[:i]
	}
	switch s {
	case "top":
		return 0, off, nil
	case "center":
		return 0.5, off, nil
	case "bottom":
		return 1, off, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadAnchor, s)
		}
		return v / 100, off, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrBadAnchor, s)
}

func parseOffset(s string) (float64, error) {
	if len(s) < 3 || s[1] != '=' {
		return 0, fmt.Errorf("%w: offset %q", ErrBadAnchor, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[2:], "px"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: offset %q", ErrBadAnchor, s)
	}
	if s[0] == '-' {
		v = -v
	}
	return v, nil
}

// Once latches the first time a scroll position enters its range, for
// reveal-once effects. It is safe for concurrent use.
type Once struct {
	Range Range

	mu    sync.Mutex
	fired bool
}

// Observe reports true exactly once: on the first position at or past
// Range.Start.
func (o *Once) Observe(y float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fired || y < o.Range.Start {
		return false
	}
	o.fired = true
	return true
}

// Fired reports whether the latch has triggered.
func (o *Once) Fired() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fired
}
