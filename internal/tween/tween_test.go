package tween

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestEaseEndpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
	}{
		{"linear", Linear},
		{"power2.in", Power2In},
		{"power2.out", Power2Out},
		{"power2.inOut", Power2InOut},
		{"power3.out", Power3Out},
		{"back.out", BackOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ease(0); math.Abs(got) > eps {
				t.Errorf("ease(0) = %v, want 0", got)
			}
			if got := tt.ease(1); math.Abs(got-1) > eps {
				t.Errorf("ease(1) = %v, want 1", got)
			}
			if got := tt.ease(-3); math.Abs(got) > eps {
				t.Errorf("ease(-3) = %v, want clamped 0", got)
			}
		})
	}
}

func TestPower2InOutIsSymmetric(t *testing.T) {
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := Power2InOut(x)
		b := 1 - Power2InOut(1-x)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("Power2InOut(%v) = %v, mirrored %v", x, a, b)
		}
	}
	if got := Power2InOut(0.5); math.Abs(got-0.5) > eps {
		t.Errorf("Power2InOut(0.5) = %v, want 0.5", got)
	}
}

func TestBackOutOvershoots(t *testing.T) {
	ease := BackOut
	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = math.Max(peak, ease(float64(i)/100))
	}
	if peak <= 1 {
		t.Errorf("BackOut peak = %v, want > 1", peak)
	}
}

func TestCurveShapes(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
		at   float64
		want float64
	}{
		{"linear", Linear, 0.3, 0.3},
		{"power2.in is cubic", Power2In, 0.5, 0.125},
		{"power2.out is cubic", Power2Out, 0.5, 0.875},
		{"power3.out is quartic", Power3Out, 0.5, 0.9375},
		{"input clamped", Power2In, 2, 1},
	}
	for _, tt := range tests {
		if got := tt.ease(tt.at); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s: ease(%v) = %v, want %v", tt.name, tt.at, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"none", "power2.in", "power2.inOut", "power3.out", "back.out"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) error = %v", name, err)
		}
	}
	if _, err := ByName("elastic.wobble"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("ByName(unknown) error = %v, want ErrUnknownEase", err)
	}
}

func TestTimelineSequencing(t *testing.T) {
	tl := NewTimeline().
		Then(Track{Duration: 0.1, From: 0, To: 1}, "opacity").
		With(Track{Duration: 0.7, From: -50, To: 100}, "y").
		Then(Track{Duration: 0.1, From: 1, To: 0}, "opacity")

	if got := tl.Duration(); math.Abs(got-0.8) > eps {
		t.Fatalf("Duration() = %v, want 0.8", got)
	}

	tests := []struct {
		prop string
		at   float64
		want float64
	}{
		{"opacity", 0, 0},
		{"opacity", 0.05, 0.5},
		{"opacity", 0.4, 1},
		{"opacity", 0.75, 0.5},
		{"opacity", 0.8, 0},
		{"y", 0, -50},
		{"y", 0.35, 25},
		{"y", 0.8, 100},
		{"missing", 0.3, 0},
	}
	for _, tt := range tests {
		if got := tl.Value(tt.prop, tt.at); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Value(%q, %v) = %v, want %v", tt.prop, tt.at, got, tt.want)
		}
	}
}

func TestTimelineValueAtProgress(t *testing.T) {
	tl := NewTimeline().At(1, Track{Duration: 1, From: 10, To: 20}, "w")
	if got := tl.ValueAtProgress("w", 0); got != 10 {
		t.Errorf("ValueAtProgress(0) = %v, want 10", got)
	}
	if got := tl.ValueAtProgress("w", 0.75); math.Abs(got-15) > eps {
		t.Errorf("ValueAtProgress(0.75) = %v, want 15", got)
	}
	if got := tl.ValueAtProgress("w", 7); got != 20 {
		t.Errorf("ValueAtProgress(7) = %v, want clamped 20", got)
	}
}
