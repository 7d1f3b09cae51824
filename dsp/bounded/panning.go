package bounded

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-automation/dsp/core"
)

// Panning is the stereo positioning of a sound.
//
// Valid values range from -1 (left speaker only) to 1 (right speaker
// only). 0 plays a sound at equal volume from both speakers.
type Panning float32

// Stereo positions.
const (
	Left   Panning = -1
	Center Panning = 0
	Right  Panning = 1
)

// NewPanning returns v clamped into [-1, 1].
func NewPanning(v float32) Panning {
	return Panning(core.Clamp32(v, -1, 1))
}

// ParsePanning validates v against [-1, 1]. Out-of-range, NaN, and
// infinite values are rejected, never clamped.
func ParsePanning(v float32) (Panning, error) {
	f := float64(v)
	if math.IsNaN(f) || f < -1 || f > 1 {
		return 0, fmt.Errorf("%w: panning must be in [-1, 1]: %f", ErrOutOfRange, f)
	}

	return Panning(v), nil
}

// Float32 returns the underlying value.
func (p Panning) Float32() float32 {
	return float32(p)
}

// Interpolate clamps both endpoints into range and linearly blends
// between them. The amount itself is not clamped; it is expected to
// come pre-shaped from the easing layer.
func (p Panning) Interpolate(to Panning, amount float64) Panning {
	a := core.Clamp(float64(p), -1, 1)
	b := core.Clamp(float64(to), -1, 1)

	return Panning(core.Lerp(a, b, amount))
}

// Add returns the saturating sum. The operand must not be NaN.
func (p Panning) Add(rhs Panning) Panning {
	return NewPanning(float32(p) + float32(rhs))
}

// Sub returns the saturating difference. The operand must not be NaN.
func (p Panning) Sub(rhs Panning) Panning {
	return NewPanning(float32(p) - float32(rhs))
}

// Mul returns the saturating product. The factor must not be NaN.
func (p Panning) Mul(v float32) Panning {
	return NewPanning(float32(p) * v)
}

// Div returns the saturating quotient. The divisor must not be zero or NaN.
func (p Panning) Div(v float32) Panning {
	return NewPanning(float32(p) / v)
}

// Rem returns the saturating remainder. The divisor must not be zero or NaN.
func (p Panning) Rem(v float32) Panning {
	return NewPanning(float32(math.Mod(float64(p), float64(v))))
}

// Neg returns the mirrored stereo position.
func (p Panning) Neg() Panning {
	return NewPanning(-float32(p))
}

// UnmarshalJSON decodes a plain JSON number and rejects values outside
// [-1, 1] with [ErrOutOfRange].
func (p *Panning) UnmarshalJSON(data []byte) error {
	var v float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	if math.IsNaN(v) || v < -1 || v > 1 {
		return fmt.Errorf("%w: panning must be in [-1, 1]: %f", ErrOutOfRange, v)
	}

	*p = Panning(v)

	return nil
}
