// Package tween provides easing curves and time-bounded value
// transitions for parameter automation.
//
// Everything in this package is pure and deterministic: the same
// (tween, elapsed) pair always yields the same value, so tweens can be
// evaluated on a real-time audio thread without side effects.
package tween
