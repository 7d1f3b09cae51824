package bounded

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-automation/dsp/core"
)

// Mix is an amount to blend the "dry" and "wet" outputs of an effect.
//
// The dry signal is the audio before the effect is applied; the wet
// signal is the audio after. Valid values range from 0 (dry only) to
// 1 (wet only), with 0.5 an equal blend of both.
type Mix float32

// Blend endpoints.
const (
	Dry Mix = 0
	Wet Mix = 1
)

// NewMix returns v clamped into [0, 1].
func NewMix(v float32) Mix {
	return Mix(core.Clamp32(v, 0, 1))
}

// ParseMix validates v against [0, 1]. Out-of-range, NaN, and infinite
// values are rejected, never clamped.
func ParseMix(v float32) (Mix, error) {
	f := float64(v)
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0, fmt.Errorf("%w: mix must be in [0, 1]: %f", ErrOutOfRange, f)
	}

	return Mix(v), nil
}

// Float32 returns the underlying value.
func (m Mix) Float32() float32 {
	return float32(m)
}

// Interpolate clamps both endpoints into range and linearly blends
// between them. The amount itself is not clamped; it is expected to
// come pre-shaped from the easing layer.
func (m Mix) Interpolate(to Mix, amount float64) Mix {
	a := core.Clamp(float64(m), 0, 1)
	b := core.Clamp(float64(to), 0, 1)

	return Mix(core.Lerp(a, b, amount))
}

// Add returns the saturating sum. The operand must not be NaN.
func (m Mix) Add(rhs Mix) Mix {
	return NewMix(float32(m) + float32(rhs))
}

// Sub returns the saturating difference. The operand must not be NaN.
func (m Mix) Sub(rhs Mix) Mix {
	return NewMix(float32(m) - float32(rhs))
}

// Mul returns the saturating product. The factor must not be NaN.
func (m Mix) Mul(v float32) Mix {
	return NewMix(float32(m) * v)
}

// Div returns the saturating quotient. The divisor must not be zero or NaN.
func (m Mix) Div(v float32) Mix {
	return NewMix(float32(m) / v)
}

// Rem returns the saturating remainder. The divisor must not be zero or NaN.
func (m Mix) Rem(v float32) Mix {
	return NewMix(float32(math.Mod(float64(m), float64(v))))
}

// Neg returns the saturating negation, which for a blend amount always
// clamps to [Dry].
func (m Mix) Neg() Mix {
	return NewMix(-float32(m))
}

// UnmarshalJSON decodes a plain JSON number and rejects values outside
// [0, 1] with [ErrOutOfRange].
func (m *Mix) UnmarshalJSON(data []byte) error {
	var v float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: mix must be in [0, 1]: %f", ErrOutOfRange, v)
	}

	*m = Mix(v)

	return nil
}
