// Package raindrop computes the scroll-scrubbed sequence that introduces
// the skills section: three drops fall, splash, and spread into titled
// panels.
package raindrop

import (
	"math"

	"github.com/Jheathc1/jhWebsite/internal/scroll"
	"github.com/Jheathc1/jhWebsite/internal/tween"
)

// Scroll anchors for the sequence.
const (
	StartAnchor = "top 80%"
	EndAnchor   = "+=200"
)

// Panel geometry.
const (
	DropWidth    = 40
	DropHeight   = 60
	SplatSize    = 64
	PanelWidth   = 450
	PanelHeight  = 200
	PanelRadius  = 12
	SplatOffsetY = 200
)

// DropPath is the teardrop outline in a 40x60 box.
const DropPath = "M20 0 C20 0 40 30 40 45 C40 53.28 31.05 60 20 60 C8.95 60 0 53.28 0 45 C0 30 20 0 20 0Z"

// DefaultTitles label the three panels left to right.
var DefaultTitles = [3]string{"Backend", "Frontend", "Cloud/DevOps"}

const (
	propDropOpacity  = "drop.opacity"
	propDropY        = "drop.y"
	propDropScale    = "drop.scale"
	propSplatOpacity = "splat.opacity"
	propSplatScale   = "splat.scale"
	propSplatWidth   = "splat.width"
	propSplatHeight  = "splat.height"
	propSplatRadius  = "splat.radius"
	propTitleOpacity = "title.opacity"
)

// Timeline is the sequence in seconds of scrub time.
func Timeline() *tween.Timeline {
	return tween.NewTimeline().
		Then(tween.Track{Duration: 0.1, From: 0, To: 1}, propDropOpacity).
		With(tween.Track{Duration: 0.7, From: -50, To: 100, Ease: tween.Power2In}, propDropY).
		Then(tween.Track{Duration: 0.1, From: 1, To: 0}, propDropOpacity).
		With(tween.Track{Duration: 0.1, From: 1, To: 0.5}, propDropScale).
		Then(tween.Track{Duration: 0.3, From: 0, To: 1, Ease: tween.BackOut}, propSplatOpacity, propSplatScale).
		Then(tween.Track{Duration: 0.5, From: SplatSize, To: PanelWidth, Ease: tween.Power2InOut}, propSplatWidth).
		With(tween.Track{Duration: 0.5, From: SplatSize, To: PanelHeight, Ease: tween.Power2InOut}, propSplatHeight).
		With(tween.Track{Duration: 0.5, From: SplatSize / 2, To: PanelRadius, Ease: tween.Power2InOut}, propSplatRadius).
		Then(tween.Track{Duration: 0.3, From: 0, To: 1}, propTitleOpacity)
}

// Range resolves the scroll span of the sequence for the section element.
func Range(el scroll.Element, viewportHeight float64) (scroll.Range, error) {
	return scroll.Resolve(StartAnchor, EndAnchor, el, viewportHeight)
}

// Layout is the container the panels spread across.
type Layout struct {
	Width    float64
	PaddingX float64
	Titles   [3]string
}

// DefaultLayout matches a 1280px wide section with 80px side padding.
func DefaultLayout() Layout {
	return Layout{Width: 1280, PaddingX: 80, Titles: DefaultTitles}
}

// Drop is a falling drop; X is its center, Y its vertical offset.
type Drop struct {
	X, Y    float64
	Opacity float64
	Scale   float64
}

// Splat is a landed drop growing into a panel. X is its center.
type Splat struct {
	X, Y          float64
	Width, Height float64
	Radius        float64
	Opacity       float64
	Scale         float64
	Title         string
	TitleOpacity  float64
}

// Frame is the whole sequence at one progress value.
type Frame struct {
	Width  float64
	Height float64
	Drops  [3]Drop
	Splats [3]Splat
}

// Sequence samples the raindrop timeline for a layout.
type Sequence struct {
	tl     *tween.Timeline
	layout Layout
}

// NewSequence builds the timeline once for repeated sampling.
func NewSequence(layout Layout) *Sequence {
	return &Sequence{tl: Timeline(), layout: layout}
}

// FrameAt is a pure function of progress in [0,1].
func (s *Sequence) FrameAt(progress float64) Frame {
	tl, l := s.tl, s.layout
	v := func(prop string) float64 { return tl.ValueAtProgress(prop, progress) }

	f := Frame{Width: l.Width, Height: SplatOffsetY + PanelHeight + 40}

	// Drops stay over the columns the splats start in.
	drops := columns(l, SplatSize)
	for i := range f.Drops {
		f.Drops[i] = Drop{
			X:       drops[i],
			Y:       v(propDropY),
			Opacity: clamp01(v(propDropOpacity)),
			Scale:   v(propDropScale),
		}
	}

	w := v(propSplatWidth)
	cols := columns(l, w)
	for i := range f.Splats {
		f.Splats[i] = Splat{
			X:            cols[i],
			Y:            SplatOffsetY,
			Width:        w,
			Height:       v(propSplatHeight),
			Radius:       v(propSplatRadius),
			Opacity:      clamp01(v(propSplatOpacity)),
			Scale:        math.Max(0, v(propSplatScale)),
			Title:        l.Titles[i],
			TitleOpacity: clamp01(v(propTitleOpacity)),
		}
	}
	return f
}

// columns spaces three items of width w between the paddings, as
// justify-between would.
func columns(l Layout, w float64) [3]float64 {
	return [3]float64{
		l.PaddingX + w/2,
		l.Width / 2,
		l.Width - l.PaddingX - w/2,
	}
}

func clamp01(x float64) float64 { return math.Max(0, math.Min(1, x)) }
