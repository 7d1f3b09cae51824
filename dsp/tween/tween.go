package tween

import "github.com/cwbudde/algo-automation/dsp/core"

// Tweenable is satisfied by any value type that can be animated by a
// [Tween]: it blends from the receiver toward to by the given amount.
type Tweenable[T any] interface {
	Interpolate(to T, amount float64) T
}

// Scalar is a plain float64 that satisfies [Tweenable], for parameters
// without a bounded value type (filter cutoffs, dB gains).
type Scalar float64

// Interpolate linearly blends between s and to.
func (s Scalar) Interpolate(to Scalar, amount float64) Scalar {
	return Scalar(core.Lerp(float64(s), float64(to), amount))
}

// Tween describes a movement of one value to another over time.
//
// Duration is in seconds and must be greater than zero; evaluating a
// zero- or negative-duration tween is a caller contract violation.
type Tween struct {
	Duration  float64
	Easing    Easing
	Direction Direction
}

// Ease applies the tween's easing curve and direction to a normalized
// progress t.
//
// The In/Out/InOut composition follows rxi's flux:
// https://github.com/rxi/flux/blob/master/flux.lua#L33
func (tw Tween) Ease(t float64) float64 {
	switch tw.Direction {
	case Out:
		return 1 - tw.Easing.Apply(1-t)
	case InOut:
		t *= 2
		if t < 1 {
			return 0.5 * tw.Easing.Apply(t)
		}

		return 0.5*(1-tw.Easing.Apply(2-t)) + 0.5
	default:
		return tw.Easing.Apply(t)
	}
}

// Lerp returns the value of an animation between from and to at
// elapsed seconds into this tween.
func (tw Tween) Lerp(from, to, elapsed float64) float64 {
	return core.Lerp(from, to, tw.Ease(elapsed/tw.Duration))
}

// Finished reports whether elapsed has reached the tween's duration.
func (tw Tween) Finished(elapsed float64) bool {
	return elapsed >= tw.Duration
}
