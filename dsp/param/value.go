package param

import "github.com/cwbudde/algo-automation/dsp/tween"

// Mapping translates a source parameter's float64 output into the
// destination type: the input range maps linearly onto the output
// range, with optional clamping at either end.
type Mapping[T tween.Tweenable[T]] struct {
	InputRange  [2]float64
	OutputRange [2]T
	ClampBottom bool
	ClampTop    bool
}

// Map translates x through the mapping.
func (m Mapping[T]) Map(x float64) T {
	amount := (x - m.InputRange[0]) / (m.InputRange[1] - m.InputRange[0])

	if m.ClampBottom && amount < 0 {
		amount = 0
	}

	if m.ClampTop && amount > 1 {
		amount = 1
	}

	return m.OutputRange[0].Interpolate(m.OutputRange[1], amount)
}

type valueKind uint8

const (
	valueFixed valueKind = iota
	valueFromParameter
)

// Value is a parameter's authored target: either a fixed value, or a
// live reference to another parameter resolved through [Info] each
// time the value is read.
type Value[T tween.Tweenable[T]] struct {
	kind    valueKind
	fixed   T
	source  ID
	mapping Mapping[T]
}

// Fixed returns a Value that always resolves to v.
func Fixed[T tween.Tweenable[T]](v T) Value[T] {
	return Value[T]{kind: valueFixed, fixed: v}
}

// FromParameter returns a Value that follows the parameter named by id,
// translated through the mapping. The reference is non-owning; if the
// parameter disappears, resolution fails and the caller's fallback is
// used instead.
func FromParameter[T tween.Tweenable[T]](id ID, mapping Mapping[T]) Value[T] {
	return Value[T]{kind: valueFromParameter, source: id, mapping: mapping}
}

// Resolve reads the value's current target. For fixed values it always
// succeeds; for parameter references it reports false when the source
// cannot be found.
func (v Value[T]) Resolve(info *Info) (T, bool) {
	if v.kind == valueFixed {
		return v.fixed, true
	}

	x, ok := info.ParameterValue(v.source)
	if !ok {
		var zero T
		return zero, false
	}

	return v.mapping.Map(x), true
}

// Linked reports whether the value references another parameter.
func (v Value[T]) Linked() bool {
	return v.kind == valueFromParameter
}
