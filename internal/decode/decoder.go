// Package decode implements the decoding-text effect: text starts as
// scrambled glyphs and settles rune by rune into its final form.
package decode

import (
	"strings"
	"time"
)

const (
	// Glyphs are drawn for runes that have not settled.
	Glyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#$%^&*"

	// Passthrough runes are shown as-is from the first tick.
	Passthrough = " \n.,:()"

	// PlaceholderRune masks text before decoding starts.
	PlaceholderRune = '█'

	// AdvanceChance is the per-tick probability that a rune advances.
	AdvanceChance = 0.3

	// Iterations is how many advances a rune needs to settle.
	Iterations = 10

	TickInterval = 50 * time.Millisecond
	BaseDelay    = 300 * time.Millisecond
	LineDelay    = 100 * time.Millisecond

	// maxTicks bounds Frames; at 0.3 per tick a rune settles in about 33.
	maxTicks = 2000
)

var glyphs = []rune(Glyphs)

// Rand is the random source the decoder draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// IsPassthrough reports whether r is never scrambled.
func IsPassthrough(r rune) bool { return strings.ContainsRune(Passthrough, r) }

// Placeholder masks every scrambling rune of text.
func Placeholder(text string) string {
	return strings.Map(func(r rune) rune {
		if IsPassthrough(r) {
			return r
		}
		return PlaceholderRune
	}, text)
}

// Delay is when decoding of the given zero-based line starts.
func Delay(line int) time.Duration {
	if line < 0 {
		line = 0
	}
	return BaseDelay + time.Duration(line)*LineDelay
}

// Decoder tracks per-rune progress toward the target text.
type Decoder struct {
	target []rune
	iter   []int
	rng    Rand
}

// New starts decoding text with randomness from rng.
func New(text string, rng Rand) *Decoder {
	target := []rune(text)
	d := &Decoder{target: target, iter: make([]int, len(target)), rng: rng}
	for i, r := range target {
		if IsPassthrough(r) {
			d.iter[i] = Iterations
		}
	}
	return d
}

// Done reports whether every rune has settled.
func (d *Decoder) Done() bool {
	for _, n := range d.iter {
		if n < Iterations {
			return false
		}
	}
	return true
}

// Step advances one tick and returns the text to display.
func (d *Decoder) Step() string {
	out := make([]rune, len(d.target))
	for i, r := range d.target {
		if d.iter[i] < Iterations && d.rng.Float64() < AdvanceChance {
			d.iter[i]++
		}
		if d.iter[i] >= Iterations {
			out[i] = r
			continue
		}
		out[i] = glyphs[d.rng.IntN(len(glyphs))]
	}
	return string(out)
}

// Frames runs a decoder to completion and returns every displayed
// string, ending with text itself.
func Frames(text string, rng Rand) []string {
	d := New(text, rng)
	var frames []string
	for tick := 0; tick < maxTicks && !d.Done(); tick++ {
		frames = append(frames, d.Step())
	}
	if len(frames) == 0 || frames[len(frames)-1] != text {
		frames = append(frames, text)
	}
	return frames
}
