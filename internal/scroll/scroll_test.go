package scroll

import (
	"errors"
	"math"
	"testing"
)

func TestRangeProgress(t *testing.T) {
	r := Range{Start: 100, End: 300}
	tests := []struct {
		y    float64
		want float64
	}{
		{0, 0},
		{100, 0},
		{200, 0.5},
		{300, 1},
		{900, 1},
		{150, 0.25},
	}
	for _, tt := range tests {
		if got := r.Progress(tt.y); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Progress(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestRangeProgressDegenerate(t *testing.T) {
	r := Range{Start: 50, End: 50}
	if got := r.Progress(49); got != 0 {
		t.Errorf("Progress below start = %v, want 0", got)
	}
	if got := r.Progress(50); got != 1 {
		t.Errorf("Progress at start = %v, want 1", got)
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"top bottom", Anchor{Element: 0, Viewport: 1}},
		{"bottom top", Anchor{Element: 1, Viewport: 0}},
		{"center center", Anchor{Element: 0.5, Viewport: 0.5}},
		{"top 80%", Anchor{Element: 0, Viewport: 0.8}},
		{"top bottom-=100", Anchor{Element: 0, Viewport: 1, Offset: 100}},
		{"+=200", Anchor{Offset: 200, Relative: true}},
		{"+=150px", Anchor{Offset: 150, Relative: true}},
		{"+=150%", Anchor{ViewportShare: 1.5, Relative: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if err != nil {
				t.Fatalf("ParseAnchor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAnchor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAnchorErrors(t *testing.T) {
	for _, in := range []string{"", "top", "middle bottom", "top bottom extra", "+=abc", "top x%", "+=x%"} {
		if _, err := ParseAnchor(in); !errors.Is(err, ErrBadAnchor) {
			t.Errorf("ParseAnchor(%q) error = %v, want ErrBadAnchor", in, err)
		}
	}
}

func TestResolve(t *testing.T) {
	el := Element{Top: 1000, Height: 400}

	r, err := Resolve("top bottom", "bottom top", el, 800)
	if err != nil {
		t.Fatal(err)
	}
	if r.Start != 200 || r.End != 1400 {
		t.Errorf("Resolve(top bottom, bottom top) = %+v, want {200 1400}", r)
	}

	r, err = Resolve("top 80%", "+=200", el, 800)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Start-360) > 1e-9 || math.Abs(r.End-560) > 1e-9 {
		t.Errorf("Resolve(top 80%%, +=200) = %+v, want {360 560}", r)
	}

	r, err = Resolve("top center", "+=150%", el, 800)
	if err != nil {
		t.Fatal(err)
	}
	if r.Start != 600 || r.End != 1800 {
		t.Errorf("Resolve(top center, +=150%%) = %+v, want {600 1800}", r)
	}

	if _, err := Resolve("+=10", "bottom top", el, 800); !errors.Is(err, ErrBadAnchor) {
		t.Errorf("relative start error = %v, want ErrBadAnchor", err)
	}
}

func TestOnceFiresOnce(t *testing.T) {
	o := &Once{Range: Range{Start: 100, End: 200}}
	if o.Observe(50) {
		t.Error("Observe before range fired")
	}
	if !o.Observe(120) {
		t.Error("Observe inside range did not fire")
	}
	if o.Observe(150) || o.Observe(20) {
		t.Error("Observe fired twice")
	}
	if !o.Fired() {
		t.Error("Fired() = false after firing")
	}
}
