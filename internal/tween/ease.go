// Package tween provides easing curves and keyframe timelines for the
// page's scroll-scrubbed and time-driven animations. The curves come from
// gween; Timeline places them in time.
package tween

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEase is returned by ByName for an unrecognized curve name.
var ErrUnknownEase = errors.New("tween: unknown ease")

// Ease maps normalized time in [0,1] to normalized progress. Input is
// clamped; output is not: BackOut overshoots past 1.
type Ease func(t float64) float64

// From adapts a gween curve to normalized time. The endpoints are exact;
// gween computes in float32 and can miss 0 by an ulp.
func From(fn ease.TweenFunc) Ease {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Curve names follow the animation definitions: powerN is an
// (N+1)-degree polynomial.
var (
	Linear      = From(ease.Linear)
	Power2In    = From(ease.InCubic)
	Power2Out   = From(ease.OutCubic)
	Power2InOut = From(ease.InOutCubic)
	Power3Out   = From(ease.OutQuart) // card reveals
	BackOut     = From(ease.OutBack)  // overshoot 1.70158
)

// ByName resolves the curve names used in animation definitions,
// e.g. "none", "power2.in", "power2.inOut", "back.out".
func ByName(name string) (Ease, error) {
	switch name {
	case "", "none", "linear":
		return Linear, nil
	case "power2.in":
		return Power2In, nil
	case "power2.out", "power2":
		return Power2Out, nil
	case "power2.inOut":
		return Power2InOut, nil
	case "power3.out", "power3":
		return Power3Out, nil
	case "back.out":
		return BackOut, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
