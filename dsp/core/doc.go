// Package core provides shared numeric helpers used across the
// automation and effect packages: clamping, interpolation, tolerant
// comparison, and amplitude/dB conversions.
package core
