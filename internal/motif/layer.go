package motif

// Layer is one concentric ring of the motif.
type Layer struct {
	Index           int
	Radius          float64
	TrailCount      int
	Direction       int // +1 or -1
	SpeedMultiplier float64
}

// GenerateLayers derives every ring from its index alone. Radii grow by
// radiusIncrement per ring, directions alternate starting clockwise, and
// inner rings move faster than outer ones.
func GenerateLayers(totalLayers int, baseRadius, radiusIncrement float64) []Layer {
	if totalLayers <= 0 {
		return nil
	}
	layers := make([]Layer, totalLayers)
	for i := range layers {
		layers[i] = Layer{
			Index:           i,
			Radius:          baseRadius + float64(i)*radiusIncrement,
			TrailCount:      trailCount(i),
			Direction:       direction(i),
			SpeedMultiplier: 1 + float64(totalLayers-i)*0.2,
		}
	}
	return layers
}

// trailCount gives the three innermost rings one extra trail so they stay
// populated despite their small circumference.
func trailCount(i int) int {
	if i <= 2 {
		return 2 + i
	}
	return 1 + i
}

func direction(i int) int {
	if i%2 == 0 {
		return 1
	}
	return -1
}
