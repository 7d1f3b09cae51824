package effect

import (
	"math"

	"github.com/cwbudde/algo-automation/dsp/bounded"
)

// Frame is one stereo sample pair.
type Frame struct {
	Left  float32
	Right float32
}

// Add returns the frame-wise sum.
func (f Frame) Add(g Frame) Frame {
	return Frame{Left: f.Left + g.Left, Right: f.Right + g.Right}
}

// Scale returns the frame with both channels multiplied by v.
func (f Frame) Scale(v float32) Frame {
	return Frame{Left: f.Left * v, Right: f.Right * v}
}

// Panned positions the frame in the stereo field using a constant-power
// pan law: each channel is scaled by the square root of its share, so
// perceived loudness stays even across the sweep. At the extremes one
// channel passes at full amplitude and the other is silent; at center
// both channels are scaled by sqrt(0.5).
func (f Frame) Panned(p bounded.Panning) Frame {
	x := (float64(p) + 1) * 0.5

	return Frame{
		Left:  f.Left * float32(math.Sqrt(1-x)),
		Right: f.Right * float32(math.Sqrt(x)),
	}
}
