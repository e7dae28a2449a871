package motif

import (
	"sort"
	"sync"
	"time"
)

// Scheduler delivers frame callbacks for time-driven sweeps.
type Scheduler interface {
	Now() time.Time
	// Frames calls fn once per frame until cancel is called. cancel must
	// not block and may be called from inside fn.
	Frames(fn func(now time.Time)) (cancel func())
}

// DefaultFrameInterval is one frame at 60fps.
const DefaultFrameInterval = time.Second / 60

// TickerScheduler drives frames from a time.Ticker on its own goroutine.
type TickerScheduler struct {
	Interval time.Duration
}

func (TickerScheduler) Now() time.Time { return time.Now() }

func (s TickerScheduler) Frames(fn func(now time.Time)) func() {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				fn(now)
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// ManualScheduler only produces frames when advanced. Offline renderers
// use it to sample a sweep at a fixed frame rate.
type ManualScheduler struct {
	mu   sync.Mutex
	now  time.Time
	next int
	subs map[int]func(time.Time)
}

// NewManualScheduler starts the clock at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start, subs: make(map[int]func(time.Time))}
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) Frames(fn func(now time.Time)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Advance moves the clock by d and delivers one frame to every
// subscriber, in subscription order. Subscribers cancelled during the
// frame are skipped.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	now := s.now
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Ints(ids)

	for _, id := range ids {
		s.mu.Lock()
		fn, ok := s.subs[id]
		s.mu.Unlock()
		if ok {
			fn(now)
		}
	}
}

// RunUntil advances by step until done reports true or maxFrames frames
// have run, returning the number of frames delivered.
func (s *ManualScheduler) RunUntil(step time.Duration, maxFrames int, done func() bool) int {
	n := 0
	for n < maxFrames && !done() {
		s.Advance(step)
		n++
	}
	return n
}

// Pending reports the number of live frame subscriptions.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// ScrollSource publishes page scroll positions.
type ScrollSource interface {
	OnScroll(fn func(scrollY float64)) (detach func())
}

// ScrollFeed is an in-process ScrollSource. It counts attachments so
// callers can check for leaked listeners.
type ScrollFeed struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(float64)
	attached  int
	detached  int
}

func (f *ScrollFeed) OnScroll(fn func(scrollY float64)) func() {
	f.mu.Lock()
	if f.listeners == nil {
		f.listeners = make(map[int]func(float64))
	}
	id := f.next
	f.next++
	f.listeners[id] = fn
	f.attached++
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.listeners, id)
			f.detached++
			f.mu.Unlock()
		})
	}
}

// Emit delivers a scroll position to every attached listener.
func (f *ScrollFeed) Emit(scrollY float64) {
	f.mu.Lock()
	ids := make([]int, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}
	f.mu.Unlock()
	sort.Ints(ids)

	for _, id := range ids {
		f.mu.Lock()
		fn, ok := f.listeners[id]
		f.mu.Unlock()
		if ok {
			fn(scrollY)
		}
	}
}

// Listeners reports how many listeners are attached right now.
func (f *ScrollFeed) Listeners() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

// Counts returns the lifetime attach and detach totals.
func (f *ScrollFeed) Counts() (attached, detached int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attached, f.detached
}
