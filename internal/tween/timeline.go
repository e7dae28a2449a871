package tween

import "sort"

// Track animates one property from From to To over [Start, Start+Duration].
type Track struct {
	Start    float64
	Duration float64
	From     float64
	To       float64
	Ease     Ease
}

// End returns the time the track finishes.
func (tr Track) End() float64 { return tr.Start + tr.Duration }

// valueAt samples the track at time t. Times before Start yield From,
// times after End yield To.
func (tr Track) valueAt(t float64) float64 {
	if tr.Duration <= 0 {
		if t < tr.Start {
			return tr.From
		}
		return tr.To
	}
	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}
	p := ease((t - tr.Start) / tr.Duration)
	return tr.From + (tr.To-tr.From)*p
}

// Timeline sequences tracks over named numeric properties. Property
// values hold between tracks: before its first track a property reads
// that track's From, after a track ends it keeps that track's To until
// the next one starts.
//
// A Timeline is not safe for concurrent mutation; build it once and
// sample it from anywhere.
type Timeline struct {
	tracks    map[string][]Track
	lastStart float64
	duration  float64
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{tracks: make(map[string][]Track)}
}

// At places tracks for props starting at an absolute time.
func (tl *Timeline) At(start float64, tr Track, props ...string) *Timeline {
	tr.Start = start
	for _, p := range props {
		tl.tracks[p] = append(tl.tracks[p], tr)
		sort.SliceStable(tl.tracks[p], func(i, j int) bool {
			return tl.tracks[p][i].Start < tl.tracks[p][j].Start
		})
	}
	tl.lastStart = start
	if end := tr.End(); end > tl.duration {
		tl.duration = end
	}
	return tl
}

// Then appends tracks for props at the current end of the timeline.
func (tl *Timeline) Then(tr Track, props ...string) *Timeline {
	return tl.At(tl.duration, tr, props...)
}

// With starts tracks for props together with the previously added ones.
func (tl *Timeline) With(tr Track, props ...string) *Timeline {
	return tl.At(tl.lastStart, tr, props...)
}

// Duration is the end time of the last track.
func (tl *Timeline) Duration() float64 { return tl.duration }

// Value samples prop at time t. A property with no tracks reads zero.
func (tl *Timeline) Value(prop string, t float64) float64 {
	tracks := tl.tracks[prop]
	if len(tracks) == 0 {
		return 0
	}
	v := tracks[0].From
	for _, tr := range tracks {
		if t < tr.Start {
			break
		}
		v = tr.valueAt(t)
	}
	return v
}

// ValueAtProgress samples prop at a normalized position in the timeline,
// the way a scroll scrubber drives it.
func (tl *Timeline) ValueAtProgress(prop string, progress float64) float64 {
	return tl.Value(prop, clamp01(progress)*tl.duration)
}
