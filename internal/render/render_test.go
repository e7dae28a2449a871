package render

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/Jheathc1/jhWebsite/internal/motif"
	"github.com/Jheathc1/jhWebsite/internal/raindrop"
)

func testFrame(progress float64) motif.Frame {
	return motif.New(motif.DefaultConfig(), motif.NewRand(3)).Frame(progress, motif.Motion{})
}

func TestWriteFrameSVG(t *testing.T) {
	f := testFrame(0.25)
	var b bytes.Buffer
	WriteFrameSVG(&b, f, "")
	out := b.String()

	for _, want := range []string{
		`viewBox="0 0 400 400"`,
		`<linearGradient id="motif-center">`,
		`<circle cx="200" cy="200" r="8" fill="url(#motif-center)"/>`,
		`stroke="url(#trail-0-0)"`,
		`translate(200 200) scale(1) translate(-200 -200)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "<path "); got != len(f.Paths) {
		t.Errorf("path count = %d, want %d", got, len(f.Paths))
	}
	if !strings.Contains(out, f.Paths[0].Segment.PathData()) {
		t.Error("output missing first segment path data")
	}
}

func TestSVGIDPrefix(t *testing.T) {
	f := testFrame(0.25)
	var b bytes.Buffer
	WriteFrameSVG(&b, f, "a-")
	if err := WriteAnimatedSVG(&b, []motif.Frame{f, f}, time.Second, "b-"); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		`<linearGradient id="a-motif-center">`,
		`fill="url(#a-motif-center)"`,
		`<linearGradient id="a-trail-0-0">`,
		`stroke="url(#a-trail-0-0)"`,
		`<linearGradient id="b-motif-center">`,
		`stroke="url(#b-trail-0-0)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for _, p := range f.Paths {
		for _, prefix := range []string{"a-", "b-"} {
			id := `id="` + prefix + p.ID + `"`
			if got := strings.Count(out, id); got != 1 {
				t.Fatalf("%s defined %d times", id, got)
			}
		}
	}
}

func TestSVGSurfaceUndrawn(t *testing.T) {
	var s SVGSurface
	var b bytes.Buffer
	if _, err := s.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "<path") {
		t.Errorf("undrawn surface wrote paths: %s", b.String())
	}

	s.Draw(testFrame(0))
	s.Clear()
	b.Reset()
	if _, err := s.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "<path") {
		t.Error("cleared surface still wrote paths")
	}
}

func TestWriteAnimatedSVG(t *testing.T) {
	frames := []motif.Frame{testFrame(0), testFrame(0.5), testFrame(1)}
	frames[2].Scale, frames[2].Opacity = 3, 0

	var b bytes.Buffer
	if err := WriteAnimatedSVG(&b, frames, 800*time.Millisecond, ""); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		`<animate attributeName="d"`,
		`dur="0.800s"`,
		`values="1;1;3"`,
		`<animate attributeName="opacity" values="1;1;0"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, `<animate attributeName="d"`); got != len(frames[0].Paths) {
		t.Errorf("animated paths = %d, want %d", got, len(frames[0].Paths))
	}
}

func TestWriteAnimatedSVGEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := WriteAnimatedSVG(&b, nil, time.Second, ""); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "<animate") {
		t.Error("empty sequence produced animation")
	}
}

func TestFmtNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{0.8, "0.8"},
		{-0.0001, "0"},
		{200.1234, "200.123"},
	}
	for _, tt := range tests {
		if got := fmtNum(tt.in); got != tt.want {
			t.Errorf("fmtNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRasterSurface(t *testing.T) {
	r := NewRasterSurface(200)
	defer r.Close()

	var b bytes.Buffer
	if err := r.EncodePNG(&b); !errors.Is(err, ErrNothingDrawn) {
		t.Fatalf("EncodePNG before Draw = %v, want ErrNothingDrawn", err)
	}

	r.Draw(testFrame(0.4))
	if err := r.EncodePNG(&b); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("width = %d, want 200", got)
	}

	// The center dot is always painted.
	_, _, _, a := img.At(100, 100).RGBA()
	if a == 0 {
		t.Error("center pixel is transparent")
	}

	r.Clear()
	if err := r.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrNothingDrawn) {
		t.Errorf("EncodePNG after Clear = %v, want ErrNothingDrawn", err)
	}
}

func TestRasterSurfaceReportsPaintError(t *testing.T) {
	r := NewRasterSurface(32)
	defer r.Close()

	r.Draw(testFrame(0.4))
	if r.err != nil {
		t.Fatalf("Draw recorded %v", r.err)
	}
	// Stands in for a failed gg Stroke or Fill during the last Draw.
	failed := errors.New("stroke failed")
	r.err = failed
	if err := r.EncodePNG(&bytes.Buffer{}); !errors.Is(err, failed) {
		t.Errorf("EncodePNG = %v, want the paint error", err)
	}

	r.Draw(testFrame(0.5))
	if err := r.EncodePNG(&bytes.Buffer{}); err != nil {
		t.Errorf("EncodePNG after a clean Draw = %v", err)
	}
}

func TestWriteRaindropSVG(t *testing.T) {
	seq := raindrop.NewSequence(raindrop.DefaultLayout())

	var b bytes.Buffer
	if err := WriteRaindropSVG(&b, seq.FrameAt(0)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "<rect") || strings.Contains(b.String(), "<text") {
		t.Error("progress 0 drew splats")
	}

	b.Reset()
	if err := WriteRaindropSVG(&b, seq.FrameAt(1)); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if got := strings.Count(out, "<rect"); got != 3 {
		t.Errorf("panels = %d, want 3", got)
	}
	for _, title := range raindrop.DefaultTitles {
		if !strings.Contains(out, ">"+title+"<") {
			t.Errorf("missing title %q", title)
		}
	}
	if strings.Contains(out, raindrop.DropPath) {
		t.Error("drops still drawn at the end")
	}
}
