// Package reveal drives the page's entrance effects: project cards fade
// and rise once when they scroll into view, and each skill section's icon
// strip slides in from the right as the section scrolls past.
package reveal

import (
	"fmt"
	"math"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/scroll"
	"github.com/Jheathc1/jhWebsite/internal/tween"
)

// Card reveal, triggered once per card.
const (
	CardStart    = "top bottom-=100"
	CardEase     = "power3.out"
	CardOffsetY  = 50
	CardDuration = time.Second
)

// Icon slide-in, scrubbed by scroll.
const (
	SlideStart = "top center"
	SlideEnd   = "+=150%"
	SlideEase  = "none"
)

const (
	propOpacity = "opacity"
	propY       = "y"
	propX       = "x"
)

func mustEase(name string) tween.Ease {
	e, err := tween.ByName(name)
	if err != nil {
		panic(err)
	}
	return e
}

// CardTimeline animates a card from hidden and CardOffsetY px low to
// fully shown in place. Times are seconds.
func CardTimeline() *tween.Timeline {
	tr := tween.Track{Duration: CardDuration.Seconds(), Ease: mustEase(CardEase)}
	opacity, y := tr, tr
	opacity.From, opacity.To = 0, 1
	y.From, y.To = CardOffsetY, 0
	return tween.NewTimeline().
		At(0, opacity, propOpacity).
		With(y, propY)
}

// SlideTimeline moves the icon strip from one container width right of
// its place (x=1) to its place (x=0).
func SlideTimeline() *tween.Timeline {
	return tween.NewTimeline().
		At(0, tween.Track{Duration: 1, From: 1, To: 0, Ease: mustEase(SlideEase)}, propX)
}

// CardStyle is a card's animated style: Y is a downward offset in px.
type CardStyle struct {
	Opacity float64 `json:"opacity"`
	Y       float64 `json:"y"`
}

// CardFrames samples the reveal every step, ending exactly on the shown
// state, for the browser to play back after the card fires.
func CardFrames(step time.Duration) []CardStyle {
	if step <= 0 {
		step = time.Second / 60
	}
	tl := CardTimeline()
	n := int(math.Ceil(float64(CardDuration) / float64(step)))
	frames := make([]CardStyle, 0, n+1)
	for i := 0; i <= n; i++ {
		t := math.Min(float64(time.Duration(i)*step), float64(CardDuration)) / float64(time.Second)
		frames = append(frames, CardStyle{Opacity: tl.Value(propOpacity, t), Y: tl.Value(propY, t)})
	}
	return frames
}

// Cards holds the once-only trigger of every card on a page.
type Cards struct {
	latches []*scroll.Once
}

// NewCards resolves each card's trigger from the page top of the card.
func NewCards(tops []float64, viewportHeight float64) (*Cards, error) {
	c := &Cards{latches: make([]*scroll.Once, len(tops))}
	for i, top := range tops {
		// The end anchor is unused by a latch; only Start matters.
		r, err := scroll.Resolve(CardStart, "+=0", scroll.Element{Top: top}, viewportHeight)
		if err != nil {
			return nil, fmt.Errorf("reveal: card %d: %w", i, err)
		}
		c.latches[i] = &scroll.Once{Range: r}
	}
	return c, nil
}

// MarkFired latches card i without reporting it, for cards the browser
// has already revealed. Out-of-range indexes are ignored.
func (c *Cards) MarkFired(i int) {
	if i >= 0 && i < len(c.latches) {
		c.latches[i].Observe(math.Inf(1))
	}
}

// Observe returns the cards that fire at scroll position y, in order.
func (c *Cards) Observe(y float64) []int {
	var fired []int
	for i, o := range c.latches {
		if o.Observe(y) {
			fired = append(fired, i)
		}
	}
	return fired
}

// Fired reports every card's latch.
func (c *Cards) Fired() []bool {
	out := make([]bool, len(c.latches))
	for i, o := range c.latches {
		out[i] = o.Fired()
	}
	return out
}

// Slide is one skill section's scrubbed icon strip.
type Slide struct {
	span scroll.Range
	tl   *tween.Timeline
}

// NewSlide binds the slide-in to a section's page geometry.
func NewSlide(el scroll.Element, viewportHeight float64) (*Slide, error) {
	r, err := scroll.Resolve(SlideStart, SlideEnd, el, viewportHeight)
	if err != nil {
		return nil, fmt.Errorf("reveal: slide: %w", err)
	}
	return &Slide{span: r, tl: SlideTimeline()}, nil
}

// Range is the scroll span of the slide.
func (s *Slide) Range() scroll.Range { return s.span }

// XAt is the strip offset at scroll position y, in container widths.
func (s *Slide) XAt(y float64) float64 {
	return s.tl.ValueAtProgress(propX, s.span.Progress(y))
}
