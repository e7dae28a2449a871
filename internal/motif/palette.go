package motif

import (
	"math/rand/v2"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rand is the random source the color assigner draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source for a fixed seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FreeRand returns a source seeded from the clock. Production activations
// use it so every activation rolls new colors.
func FreeRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// Palette holds the four color families trails are drawn from.
type Palette struct {
	Whites  []colorful.Color
	Blues   []colorful.Color
	Purples []colorful.Color
	Indigos []colorful.Color
}

// DefaultPalette is the slate/blue/purple/indigo scheme of the site.
func DefaultPalette() Palette {
	return Palette{
		Whites:  mustHexes("#F8FAFC", "#F1F5F9", "#E2E8F0"),
		Blues:   mustHexes("#DBEAFE", "#93C5FD", "#3B82F6", "#1D4ED8"),
		Purples: mustHexes("#F3E8FF", "#C084FC", "#7E22CE", "#581C87"),
		Indigos: mustHexes("#EEF2FF", "#818CF8", "#4F46E5", "#3730A3"),
	}
}

// Near, Mid and Far are the overlapping slices sampled for the head,
// body and tail of a trail.
func (p Palette) Near() []colorful.Color { return concat(p.Whites, head(p.Blues, 2)) }
func (p Palette) Mid() []colorful.Color { return concat(tail(p.Blues, 1), tail(p.Purples, 1)) }
func (p Palette) Far() []colorful.Color { return concat(tail(p.Purples, 2), tail(p.Indigos, 2)) }

// Stop is one gradient stop. Offset is a percentage in [0,100].
type Stop struct {
	Offset  float64
	Color   colorful.Color
	Opacity float64
}

// PickTrailColors samples a near/mid/far color triple. Each call is
// independent; no ordering between calls is guaranteed.
func PickTrailColors(p Palette, rng Rand) [3]colorful.Color {
	return [3]colorful.Color{
		pick(p.Near(), rng),
		pick(p.Mid(), rng),
		pick(p.Far(), rng),
	}
}

// TrailStops lays a color triple out along a trail, fading toward the tail end.
func TrailStops(colors [3]colorful.Color) []Stop {
	return []Stop{
		{Offset: 0, Color: colors[0], Opacity: 1},
		{Offset: 85, Color: colors[1], Opacity: 0.9},
		{Offset: 95, Color: colors[2], Opacity: 0.8},
		{Offset: 100, Color: colors[2], Opacity: 0.7},
	}
}

// CenterStops is the fixed gradient of the core circle.
func CenterStops(p Palette) []Stop {
	return []Stop{
		{Offset: 0, Color: at(p.Whites, 0), Opacity: 1},
		{Offset: 50, Color: at(p.Blues, 2), Opacity: 1},
		{Offset: 100, Color: at(p.Purples, 2), Opacity: 1},
	}
}

func pick(colors []colorful.Color, rng Rand) colorful.Color {
	if len(colors) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return colors[rng.IntN(len(colors))]
}

func at(colors []colorful.Color, i int) colorful.Color {
	if i < len(colors) {
		return colors[i]
	}
	if len(colors) > 0 {
		return colors[len(colors)-1]
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func head(c []colorful.Color, n int) []colorful.Color { return c[:min(n, len(c))] }
func tail(c []colorful.Color, n int) []colorful.Color { return c[min(n, len(c)):] }

func concat(a, b []colorful.Color) []colorful.Color {
	out := make([]colorful.Color, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

func mustHexes(hexes ...string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}
