package motif

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTrailArcWidth is the angular length of a trail in radians.
const DefaultTrailArcWidth = 1.5

// Point is a position in view-box coordinates.
type Point struct {
	X, Y float64
}

// Segment is the arc a trail occupies at one progress value. Start is the
// tail, End is the head.
type Segment struct {
	Start    Point
	End      Point
	Radius   float64
	LargeArc bool

	// Angles in radians; HeadAngle-TailAngle is the trail arc width.
	TailAngle float64
	HeadAngle float64
}

// ComputeSegment places a trail on its orbit. The result depends only on
// its arguments, so progress may move in either direction between calls.
func ComputeSegment(center Point, radius, startOffset, progress, speedMultiplier float64, direction int, arcWidth float64) Segment {
	progress = clampProgress(progress)

	head := (startOffset + progress*speedMultiplier) * 2 * math.Pi * float64(direction)
	tail := head - arcWidth

	return Segment{
		Start:     pointOn(center, radius, tail),
		End:       pointOn(center, radius, head),
		Radius:    radius,
		LargeArc:  wrappedSpan(head-tail) > math.Pi,
		TailAngle: tail,
		HeadAngle: head,
	}
}

// PathData renders the segment as an SVG path: a move to the tail and a
// clockwise elliptical arc to the head.
func (s Segment) PathData() string {
	var b strings.Builder
	b.Grow(64)
	b.WriteString("M ")
	b.WriteString(fmtCoord(s.Start.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(s.Start.Y))
	b.WriteString(" A ")
	r := fmtCoord(s.Radius)
	b.WriteString(r)
	b.WriteByte(' ')
	b.WriteString(r)
	b.WriteString(" 0 ")
	if s.LargeArc {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteString(" 1 ")
	b.WriteString(fmtCoord(s.End.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(s.End.Y))
	return b.String()
}

func pointOn(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// wrappedSpan normalizes an angular span into [0, 2π).
func wrappedSpan(span float64) float64 {
	span = math.Mod(span, 2*math.Pi)
	if span < 0 {
		span += 2 * math.Pi
	}
	return span
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
