package motif

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("motif: invalid config")

// Config describes the motif geometry.
type Config struct {
	TotalLayers     int
	BaseRadius      float64
	RadiusIncrement float64
	CenterRadius    float64
	ViewSize        float64 // square view box edge
	TrailArcWidth   float64
	StrokeWidth     float64
	Palette         Palette
}

// DefaultConfig is the eight-ring motif in a 400x400 view box.
func DefaultConfig() Config {
	return Config{
		TotalLayers:     8,
		BaseRadius:      20,
		RadiusIncrement: 15,
		CenterRadius:    8,
		ViewSize:        400,
		TrailArcWidth:   DefaultTrailArcWidth,
		StrokeWidth:     8,
		Palette:         DefaultPalette(),
	}
}

// Validate checks the config keeps rings concentric and inside the view.
func (c Config) Validate() error {
	switch {
	case c.TotalLayers <= 0:
		return fmt.Errorf("%w: total layers %d", ErrInvalidConfig, c.TotalLayers)
	case c.BaseRadius <= 0:
		return fmt.Errorf("%w: base radius %v", ErrInvalidConfig, c.BaseRadius)
	case c.RadiusIncrement <= 0:
		return fmt.Errorf("%w: radius increment %v", ErrInvalidConfig, c.RadiusIncrement)
	case c.ViewSize <= 0:
		return fmt.Errorf("%w: view size %v", ErrInvalidConfig, c.ViewSize)
	case c.TrailArcWidth <= 0:
		return fmt.Errorf("%w: trail arc width %v", ErrInvalidConfig, c.TrailArcWidth)
	}
	return nil
}

// Center is the middle of the view box.
func (c Config) Center() Point {
	return Point{X: c.ViewSize / 2, Y: c.ViewSize / 2}
}

// TabDirection hints which way a transition sweep spins.
type TabDirection int

const (
	Clockwise        TabDirection = 1
	CounterClockwise TabDirection = -1
)

// Sign returns +1 or -1; the zero value spins clockwise.
func (d TabDirection) Sign() int {
	if d < 0 {
		return -1
	}
	return 1
}

// Motion overrides per-layer motion. Zero fields keep the layer's own
// speed and direction.
type Motion struct {
	Speed     float64
	Direction int
}

// Trail is one trail segment's construction-time state.
type Trail struct {
	Layer           int
	Segment         int
	StartOffset     float64 // in [0,1)
	Radius          float64
	SpeedMultiplier float64
	Direction       int
	Stops           []Stop
}

// ID names the trail's gradient within one frame.
func (t Trail) ID() string {
	return "trail-" + strconv.Itoa(t.Layer) + "-" + strconv.Itoa(t.Segment)
}

// Motif is the per-activation scene: layers and trails fixed at
// construction, geometry computed per frame.
type Motif struct {
	cfg    Config
	layers []Layer
	trails []Trail
}

// New builds the layers and assigns every trail its colors from rng.
func New(cfg Config, rng Rand) *Motif {
	layers := GenerateLayers(cfg.TotalLayers, cfg.BaseRadius, cfg.RadiusIncrement)
	m := &Motif{cfg: cfg, layers: layers}
	for _, l := range layers {
		for j := 0; j < l.TrailCount; j++ {
			m.trails = append(m.trails, Trail{
				Layer:           l.Index,
				Segment:         j,
				StartOffset:     startOffset(l.Index, j, l.TrailCount),
				Radius:          l.Radius,
				SpeedMultiplier: l.SpeedMultiplier,
				Direction:       l.Direction,
				Stops:           TrailStops(PickTrailColors(cfg.Palette, rng)),
			})
		}
	}
	return m
}

// startOffset staggers trails evenly around a ring and shifts each ring
// by a tenth of a turn.
func startOffset(layer, segment, count int) float64 {
	v := float64(layer)*0.1 + float64(segment)/float64(count)
	return v - math.Floor(v)
}

func (m *Motif) Config() Config { return m.cfg }
func (m *Motif) Layers() []Layer { return m.layers }
func (m *Motif) Trails() []Trail { return m.trails }

// Frame is a declarative description of everything drawn at one instant.
type Frame struct {
	ViewSize     float64
	Center       Point
	CenterRadius float64
	CenterStops  []Stop
	Paths        []TrailPath

	// Container transform.
	Scale   float64
	Opacity float64
}

// TrailPath is one stroked trail.
type TrailPath struct {
	ID          string
	Segment     Segment
	Stops       []Stop
	StrokeWidth float64
}

// Frame maps progress to drawable primitives with an identity container.
func (m *Motif) Frame(progress float64, motion Motion) Frame {
	c := m.cfg.Center()
	f := Frame{
		ViewSize:     m.cfg.ViewSize,
		Center:       c,
		CenterRadius: m.cfg.CenterRadius,
		CenterStops:  CenterStops(m.cfg.Palette),
		Paths:        make([]TrailPath, len(m.trails)),
		Scale:        1,
		Opacity:      1,
	}
	for i, t := range m.trails {
		speed, dir := t.SpeedMultiplier, t.Direction
		if motion.Speed > 0 {
			speed = motion.Speed
		}
		if motion.Direction != 0 {
			dir = motion.Direction
		}
		f.Paths[i] = TrailPath{
			ID:          t.ID(),
			Segment:     ComputeSegment(c, t.Radius, t.StartOffset, progress, speed, dir, m.cfg.TrailArcWidth),
			Stops:       t.Stops,
			StrokeWidth: m.cfg.StrokeWidth,
		}
	}
	return f
}
