package tween

import "math"

type easingKind uint8

const (
	easeLinear easingKind = iota
	easePowI
	easePowF
)

// Easing is the shape of a tween's motion curve. The zero value is the
// linear curve.
type Easing struct {
	kind easingKind
	powI int
	powF float64
}

// Linear is the identity curve: progress maps to itself.
var Linear = Easing{kind: easeLinear}

// PowI returns a curve raising progress to the given integer power.
func PowI(power int) Easing {
	return Easing{kind: easePowI, powI: power}
}

// PowF returns a curve raising progress to the given floating-point power.
func PowF(power float64) Easing {
	return Easing{kind: easePowF, powF: power}
}

// Apply maps a normalized progress t (0 is the beginning of the
// animation, 1 is the end) to a shaped progress.
func (e Easing) Apply(t float64) float64 {
	switch e.kind {
	case easePowI:
		return powi(t, e.powI)
	case easePowF:
		return math.Pow(t, e.powF)
	default:
		return t
	}
}

// powi computes t^n by repeated squaring, avoiding math.Pow in the
// per-sample path.
func powi(t float64, n int) float64 {
	if n < 0 {
		return 1 / powi(t, -n)
	}

	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= t
		}

		t *= t
		n >>= 1
	}

	return result
}

// Direction selects how an easing curve is applied over a tween.
type Direction uint8

const (
	// In applies the curve directly, easing in from the start.
	In Direction = iota
	// Out applies the curve to the complement and inverts it, easing
	// out toward the end.
	Out
	// InOut composes In over the first half and Out over the second,
	// producing a curve symmetric about the midpoint.
	InOut
)
