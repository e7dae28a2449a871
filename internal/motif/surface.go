package motif

import "sync"

// Surface consumes frames. The driver owns it exclusively while active
// and clears it at the start of every activation.
type Surface interface {
	Clear()
	Draw(f Frame)
}

// Recorder is a Surface that keeps frames grouped by take: every Clear
// starts a new take, so the frames of one activation never mix with the
// next one's.
type Recorder struct {
	mu     sync.Mutex
	takes  [][]Frame
	clears int
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	r.takes = append(r.takes, nil)
	r.clears++
	r.mu.Unlock()
}

func (r *Recorder) Draw(f Frame) {
	r.mu.Lock()
	if len(r.takes) == 0 {
		r.takes = append(r.takes, nil)
	}
	last := len(r.takes) - 1
	r.takes[last] = append(r.takes[last], f)
	r.mu.Unlock()
}

// Frames returns a copy of the current take.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.takes) == 0 {
		return nil
	}
	return append([]Frame(nil), r.takes[len(r.takes)-1]...)
}

// Takes returns a copy of every take, oldest first.
func (r *Recorder) Takes() [][]Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]Frame, len(r.takes))
	for i, t := range r.takes {
		out[i] = append([]Frame(nil), t...)
	}
	return out
}

// Last returns the most recent frame of the current take.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.takes) == 0 || len(r.takes[len(r.takes)-1]) == 0 {
		return Frame{}, false
	}
	take := r.takes[len(r.takes)-1]
	return take[len(take)-1], true
}

// Clears reports how many times the surface was cleared.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}
