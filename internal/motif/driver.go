package motif

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/scroll"
	"github.com/Jheathc1/jhWebsite/internal/tween"
)

// Mode is the driver state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeActive
	ModeTransitioning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeActive:
		return "active"
	case ModeTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

const (
	// DefaultTransitionDuration is the length of a transition sweep.
	DefaultTransitionDuration = 800 * time.Millisecond

	// TransitionSpeed replaces every layer's speed during a sweep.
	TransitionSpeed = 2

	// TransitionScale is the container scale a sweep ends at.
	TransitionScale = 3
)

// Timeline property names.
const (
	PropTrail   = "trail"
	PropScale   = "scale"
	PropOpacity = "opacity"
)

// TransitionTimeline is the sweep in seconds: trails run the full 0.8s,
// the container grows to 3x and fades out over the final 0.2s.
func TransitionTimeline() *tween.Timeline {
	return tween.NewTimeline().
		At(0, tween.Track{Duration: 0.8, From: 0, To: 1, Ease: tween.Power2In}, PropTrail).
		At(0, tween.Track{Duration: 0.8, From: 1, To: TransitionScale, Ease: tween.Power2InOut}, PropScale).
		At(0.6, tween.Track{Duration: 0.2, From: 1, To: 0, Ease: tween.Power2In}, PropOpacity)
}

// Props is the configuration the embedding page hands the driver.
type Props struct {
	Active        bool
	Transitioning bool
	Direction     TabDirection

	// OnTransitionComplete runs at most once per sweep, after the sweep's
	// final frame, and never after the sweep is cancelled.
	OnTransitionComplete func()
}

// Options wires a driver to its environment.
type Options struct {
	Config    Config
	Surface   Surface
	Scroll    ScrollSource
	Range     scroll.Range
	Scheduler Scheduler

	// NewRand supplies the color source for each activation. Defaults to
	// FreeRand.
	NewRand func() Rand

	TransitionDuration time.Duration
	Logger             *slog.Logger
}

// Stats counts activations and teardowns over the driver's lifetime.
type Stats struct {
	Activations int
	Teardowns   int
}

// Driver binds a motif to scroll position or to a transition sweep and
// owns every listener and frame subscription it creates.
//
// Each activation gets a new generation; callbacks carry the generation
// they were registered under and do nothing once it is stale.
//
// OnTransitionComplete runs without mu held but under doneMu, which Unmount
// also takes, so a completion never lands after Unmount returns. The
// callback must not Unmount its own driver.
type Driver struct {
	mu     sync.Mutex
	doneMu sync.Mutex

	cfg      Config
	surface  Surface
	scroll   ScrollSource
	span     scroll.Range
	sched    Scheduler
	newRand  func() Rand
	duration time.Duration
	timeline *tween.Timeline
	log      *slog.Logger

	props        Props
	sweepPending bool

	mode     Mode
	progress float64
	gen      uint64
	live     bool
	motif    *Motif
	detach   func()
	cancel   func()

	sweepStart time.Time
	sweepDir   int

	stats Stats
}

// NewDriver returns an idle driver.
func NewDriver(opts Options) *Driver {
	d := &Driver{
		cfg:      opts.Config,
		surface:  opts.Surface,
		scroll:   opts.Scroll,
		span:     opts.Range,
		sched:    opts.Scheduler,
		newRand:  opts.NewRand,
		duration: opts.TransitionDuration,
		timeline: TransitionTimeline(),
		log:      opts.Logger,
	}
	if d.cfg.TotalLayers == 0 {
		d.cfg = DefaultConfig()
	}
	if d.sched == nil {
		d.sched = TickerScheduler{}
	}
	if d.newRand == nil {
		d.newRand = FreeRand
	}
	if d.duration <= 0 {
		d.duration = DefaultTransitionDuration
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	return d
}

// Update applies new props. A false-to-true edge of Transitioning starts
// a sweep; otherwise Active selects scroll binding or idle.
func (d *Driver) Update(p Props) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.props
	d.props = p
	switch {
	case !p.Transitioning:
		d.sweepPending = false
	case !prev.Transitioning:
		d.sweepPending = true
	}
	d.reconcile()
}

// AttachSurface sets the rendering surface. Activations requested while
// no surface was attached run now.
func (d *Driver) AttachSurface(s Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s == nil {
		d.deactivate()
		d.surface = nil
		return
	}
	d.surface = s
	d.reconcile()
}

// Unmount cancels everything and clears the props.
func (d *Driver) Unmount() {
	d.doneMu.Lock()
	defer d.doneMu.Unlock()
	d.mu.Lock()
	defer d.mu.Unlock()

	d.props = Props{}
	d.sweepPending = false
	d.deactivate()
	d.gen++
}

// Mode reports the current state.
func (d *Driver) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// Progress reports the last progress value drawn.
func (d *Driver) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

// Stats returns lifetime activation and teardown counts.
func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// reconcile moves to the mode the props ask for. Callers hold d.mu.
func (d *Driver) reconcile() {
	p := d.props
	switch {
	case p.Transitioning && d.sweepPending:
		d.activate(ModeTransitioning)
	case p.Transitioning && d.mode == ModeTransitioning:
		// sweep in flight
	case p.Active:
		if d.mode != ModeActive {
			d.activate(ModeActive)
		}
	default:
		d.deactivate()
	}
}

// activate tears down the previous activation and builds a new one.
func (d *Driver) activate(mode Mode) {
	d.teardown()
	d.mode = ModeIdle
	d.progress = 0

	if d.surface == nil {
		d.log.Debug("motif: surface not attached, deferring activation", "mode", mode)
		return
	}

	d.gen++
	d.live = true
	d.stats.Activations++
	d.motif = New(d.cfg, d.newRand())
	d.mode = mode
	d.surface.Clear()

	gen := d.gen
	switch mode {
	case ModeActive:
		d.surface.Draw(d.motif.Frame(0, Motion{}))
		if d.scroll != nil {
			d.detach = d.scroll.OnScroll(func(y float64) { d.onScroll(gen, y) })
		}
	case ModeTransitioning:
		d.sweepPending = false
		d.sweepDir = d.props.Direction.Sign()
		d.surface.Draw(d.transitionFrame(0))
		d.sweepStart = d.sched.Now()
		d.cancel = d.sched.Frames(func(now time.Time) { d.onFrame(gen, now) })
	}
	d.log.Debug("motif: activated", "mode", mode, "generation", gen, "trails", len(d.motif.Trails()))
}

// deactivate stops all work and returns to idle.
func (d *Driver) deactivate() {
	d.teardown()
	d.mode = ModeIdle
	d.progress = 0
}

// teardown releases the current activation's listeners and frame
// subscription and invalidates its callbacks.
func (d *Driver) teardown() {
	if !d.live {
		return
	}
	if d.detach != nil {
		d.detach()
		d.detach = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.gen++
	d.live = false
	d.motif = nil
	d.stats.Teardowns++
}

func (d *Driver) onScroll(gen uint64, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || d.mode != ModeActive {
		return
	}
	d.progress = d.span.Progress(y)
	d.surface.Draw(d.motif.Frame(d.progress, Motion{}))
}

func (d *Driver) onFrame(gen uint64, now time.Time) {
	d.mu.Lock()
	if gen != d.gen || d.mode != ModeTransitioning {
		d.mu.Unlock()
		return
	}

	t := math.Min(1, math.Max(0, float64(now.Sub(d.sweepStart))/float64(d.duration)))
	d.progress = t
	d.surface.Draw(d.transitionFrame(t))
	if t < 1 {
		d.mu.Unlock()
		return
	}

	done := d.props.OnTransitionComplete
	if d.props.Active {
		d.activate(ModeActive)
	} else {
		d.deactivate()
	}
	settled := d.gen
	d.mu.Unlock()

	d.log.Debug("motif: transition settled", "generation", gen)
	if done == nil {
		return
	}

	d.doneMu.Lock()
	defer d.doneMu.Unlock()
	d.mu.Lock()
	current := d.gen == settled
	d.mu.Unlock()
	if current {
		done()
	}
}

// transitionFrame samples the sweep at normalized time t.
func (d *Driver) transitionFrame(t float64) Frame {
	f := d.motif.Frame(
		d.timeline.ValueAtProgress(PropTrail, t),
		Motion{Speed: TransitionSpeed, Direction: d.sweepDir},
	)
	f.Scale = d.timeline.ValueAtProgress(PropScale, t)
	f.Opacity = d.timeline.ValueAtProgress(PropOpacity, t)
	return f
}
