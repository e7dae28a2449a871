package reveal

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/scroll"
)

const tolerance = 1e-6

func TestCardFrames(t *testing.T) {
	frames := CardFrames(100 * time.Millisecond)
	if len(frames) != 11 {
		t.Fatalf("frames = %d, want 11", len(frames))
	}
	if first := frames[0]; first.Opacity != 0 || first.Y != CardOffsetY {
		t.Errorf("first frame = %+v, want hidden and %v low", first, CardOffsetY)
	}
	if last := frames[len(frames)-1]; last.Opacity != 1 || last.Y != 0 {
		t.Errorf("last frame = %+v, want shown in place", last)
	}
	// power3.out at t=0.5 is 1-(0.5)^4.
	if got := frames[5].Opacity; math.Abs(got-0.9375) > tolerance {
		t.Errorf("opacity at 0.5s = %v, want 0.9375", got)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Opacity < frames[i-1].Opacity || frames[i].Y > frames[i-1].Y {
			t.Fatalf("reveal not monotonic at frame %d: %+v -> %+v", i, frames[i-1], frames[i])
		}
	}
}

func TestCardFramesUnevenStep(t *testing.T) {
	frames := CardFrames(300 * time.Millisecond)
	if len(frames) != 5 {
		t.Fatalf("frames = %d, want 5", len(frames))
	}
	if last := frames[4]; last.Opacity != 1 || last.Y != 0 {
		t.Errorf("last frame = %+v, want the shown state", last)
	}
}

func TestCardsFireOnce(t *testing.T) {
	// Viewport 800: a card fires when its top is 100px above the viewport bottom.
	cards, err := NewCards([]float64{1000, 1500, 2500}, 800)
	if err != nil {
		t.Fatal(err)
	}
	if got := cards.Observe(0); len(got) != 0 {
		t.Errorf("Observe(0) fired %v", got)
	}
	if got := cards.Observe(-200); len(got) != 0 {
		t.Errorf("Observe(-200) fired %v", got)
	}
	if got := cards.Observe(1000); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Observe(1000) = %v, want [0 1]", got)
	}
	// Scrolling back up and down again never re-fires.
	cards.Observe(0)
	if got := cards.Observe(1000); len(got) != 0 {
		t.Errorf("second pass fired %v", got)
	}
	if got := cards.Fired(); !slices.Equal(got, []bool{true, true, false}) {
		t.Errorf("Fired() = %v", got)
	}
}

func TestCardsMarkFired(t *testing.T) {
	cards, err := NewCards([]float64{500, 900}, 800)
	if err != nil {
		t.Fatal(err)
	}
	cards.MarkFired(1)
	cards.MarkFired(7)
	if got := cards.Observe(5000); !slices.Equal(got, []int{0}) {
		t.Errorf("Observe after MarkFired(1) = %v, want [0]", got)
	}
}

func TestSlide(t *testing.T) {
	s, err := NewSlide(scroll.Element{Top: 1000, Height: 400}, 800)
	if err != nil {
		t.Fatal(err)
	}
	if r := s.Range(); r.Start != 600 || r.End != 1800 {
		t.Fatalf("Range() = %+v, want {600 1800}", r)
	}
	tests := []struct{ y, want float64 }{
		{0, 1},
		{600, 1},
		{1200, 0.5},
		{1800, 0},
		{4000, 0},
	}
	for _, tt := range tests {
		if got := s.XAt(tt.y); math.Abs(got-tt.want) > tolerance {
			t.Errorf("XAt(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}
