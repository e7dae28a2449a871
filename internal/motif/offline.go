package motif

import (
	"time"

	"github.com/Jheathc1/jhWebsite/internal/scroll"
)

// Snapshot runs a scroll-bound driver on a fake scroll feed and returns
// the frame drawn for scrollY.
func Snapshot(cfg Config, newRand func() Rand, span scroll.Range, scrollY float64) Frame {
	feed := &ScrollFeed{}
	rec := &Recorder{}
	d := NewDriver(Options{
		Config:    cfg,
		Surface:   rec,
		Scroll:    feed,
		Range:     span,
		Scheduler: NewManualScheduler(time.Time{}),
		NewRand:   newRand,
	})
	defer d.Unmount()

	d.Update(Props{Active: true})
	feed.Emit(scrollY)
	f, _ := rec.Last()
	return f
}

// RecordSweep plays one transition sweep on a manual clock, stepping by
// step, and returns every frame drawn.
func RecordSweep(cfg Config, newRand func() Rand, dir TabDirection, step time.Duration) []Frame {
	if step <= 0 {
		step = DefaultFrameInterval
	}
	sched := NewManualScheduler(time.Time{})
	rec := &Recorder{}
	d := NewDriver(Options{
		Config:    cfg,
		Surface:   rec,
		Scheduler: sched,
		NewRand:   newRand,
	})
	defer d.Unmount()

	done := false
	d.Update(Props{Transitioning: true, Direction: dir, OnTransitionComplete: func() { done = true }})
	limit := int(DefaultTransitionDuration/step) + 2
	sched.RunUntil(step, limit, func() bool { return done })
	return rec.Frames()
}

// LongestTake returns the take with the most frames, which for a
// recorder that watched a sweep is the sweep itself.
func LongestTake(r *Recorder) []Frame {
	var best []Frame
	for _, t := range r.Takes() {
		if len(t) > len(best) {
			best = t
		}
	}
	return best
}
