// Package bounded provides scalar audio value types constrained to a
// closed interval, such as a stereo position in [-1, 1] or a dry/wet
// blend in [0, 1].
//
// Every arithmetic operation saturates: results are clamped into the
// type's valid range instead of wrapping or escaping it. Construction
// through New* clamps, Parse* and JSON unmarshalling validate and
// reject out-of-range input, and a plain conversion such as
// bounded.Panning(0.25) is the unchecked path reserved for in-range
// constants at trusted call sites.
package bounded
