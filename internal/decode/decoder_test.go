package decode

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func seeded(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }

// alwaysRand advances every rune on every tick.
type alwaysRand struct{}

func (alwaysRand) IntN(int) int     { return 0 }
func (alwaysRand) Float64() float64 { return 0 }

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Go", "██"},
		{"B.S. (2024)", "█.█. (████)"},
		{"a:\nb", "█:\n█"},
	}
	for _, tt := range tests {
		if got := Placeholder(tt.in); got != tt.want {
			t.Errorf("Placeholder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDelay(t *testing.T) {
	tests := []struct {
		line int
		want time.Duration
	}{
		{-1, 300 * time.Millisecond},
		{0, 300 * time.Millisecond},
		{1, 400 * time.Millisecond},
		{5, 800 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Delay(tt.line); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFramesReachTarget(t *testing.T) {
	text := "Software Engineer, Cloud (AWS): 2024."
	for seed := uint64(0); seed < 20; seed++ {
		frames := Frames(text, seeded(seed))
		if got := frames[len(frames)-1]; got != text {
			t.Fatalf("seed %d: last frame %q, want %q", seed, got, text)
		}
	}
}

func TestPassthroughNeverScrambles(t *testing.T) {
	text := "a b.c,d:e(f)\ng"
	target := []rune(text)
	for _, f := range Frames(text, seeded(7)) {
		got := []rune(f)
		if len(got) != len(target) {
			t.Fatalf("frame %q has %d runes, want %d", f, len(got), len(target))
		}
		for i, r := range target {
			if IsPassthrough(r) && got[i] != r {
				t.Fatalf("frame %q scrambled passthrough %q at %d", f, r, i)
			}
			if !IsPassthrough(r) && got[i] != r && !strings.ContainsRune(Glyphs, got[i]) {
				t.Fatalf("frame %q shows %q outside the glyph set", f, got[i])
			}
		}
	}
}

func TestStepSettlesAfterIterations(t *testing.T) {
	d := New("abc", alwaysRand{})
	for i := 1; i < Iterations; i++ {
		if got := d.Step(); got != "AAA" {
			t.Fatalf("tick %d = %q, want scrambled AAA", i, got)
		}
	}
	if got := d.Step(); got != "abc" {
		t.Errorf("tick %d = %q, want abc", Iterations, got)
	}
	if !d.Done() {
		t.Error("Done() = false after settling")
	}
}

func TestFramesPassthroughOnly(t *testing.T) {
	frames := Frames(" .\n", seeded(1))
	if len(frames) != 1 || frames[0] != " .\n" {
		t.Errorf("Frames = %q, want the text alone", frames)
	}
}
