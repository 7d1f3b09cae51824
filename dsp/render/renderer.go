package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-automation/dsp/effect"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

const defaultBlockSize = 512

// Option mutates renderer construction parameters.
type Option func(*Renderer) error

// WithBlockSize sets how many frames are processed per block, which is
// also the granularity at which pending parameter commands are
// drained. The default is 512.
func WithBlockSize(n int) Option {
	return func(r *Renderer) error {
		if n <= 0 {
			return fmt.Errorf("render block size must be > 0: %d", n)
		}

		r.blockSize = n

		return nil
	}
}

// WithMasterGain sets a linear gain applied to both output channels.
// The default is 1.
func WithMasterGain(gain float64) Option {
	return func(r *Renderer) error {
		if gain < 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("render master gain must be >= 0: %f", gain)
		}

		r.masterGain = gain

		return nil
	}
}

// WithSource sets the registry used to resolve linked parameter
// values during the render.
func WithSource(src param.Source) Option {
	return func(r *Renderer) error {
		r.source = src
		return nil
	}
}

// Renderer feeds frames through an effect chain in fixed-size blocks.
type Renderer struct {
	chain      *effect.Chain
	sampleRate float64
	blockSize  int
	masterGain float64
	source     param.Source
	position   float64
}

// New creates a renderer for the given chain and sample rate.
func New(chain *effect.Chain, sampleRate float64, opts ...Option) (*Renderer, error) {
	if chain == nil {
		return nil, fmt.Errorf("render chain must not be nil")
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("render sample rate must be > 0: %f", sampleRate)
	}

	r := &Renderer{
		chain:      chain,
		sampleRate: sampleRate,
		blockSize:  defaultBlockSize,
		masterGain: 1,
	}

	for _, opt := range opts {
		err := opt(r)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Position returns the elapsed output time in seconds.
func (r *Renderer) Position() float64 {
	return r.position
}

// Reset rewinds the renderer's time base to zero.
func (r *Renderer) Reset() {
	r.position = 0
}

// Render processes frames through the chain in place, block by block,
// and returns the result deinterleaved into left and right float64
// buffers with the master gain applied.
//
// Commands pushed to effect handles between Render calls land at the
// start of the next block, exactly as they would on a live audio
// thread.
func (r *Renderer) Render(frames []effect.Frame) (left, right []float64) {
	dt := 1 / r.sampleRate
	info := param.Info{SampleRate: r.sampleRate, Source: r.source}

	for start := 0; start < len(frames); start += r.blockSize {
		end := min(start+r.blockSize, len(frames))

		info.Position = r.position
		r.chain.ProcessBlock(frames[start:end], dt, &info)

		r.position += float64(end-start) * dt
	}

	left = make([]float64, len(frames))
	right = make([]float64, len(frames))

	for i, f := range frames {
		left[i] = float64(f.Left)
		right[i] = float64(f.Right)
	}

	if r.masterGain != 1 {
		vecmath.ScaleBlockInPlace(left, r.masterGain)
		vecmath.ScaleBlockInPlace(right, r.masterGain)
	}

	return left, right
}

// MixDown sums stems into dst. All buffers must share dst's length.
func MixDown(dst []float64, stems ...[]float64) error {
	for i := range dst {
		dst[i] = 0
	}

	for n, stem := range stems {
		if len(stem) != len(dst) {
			return fmt.Errorf("stem %d length %d does not match mix length %d", n, len(stem), len(dst))
		}

		vecmath.AddBlockInPlace(dst, stem)
	}

	return nil
}

// Fade multiplies buf by a gain ramp from one level to another, shaped
// by the tween's easing curve over the length of the buffer.
func Fade(buf []float64, from, to float64, tw tween.Tween) {
	if len(buf) == 0 {
		return
	}

	coeffs := make([]float64, len(buf))

	den := float64(len(buf) - 1)
	if den == 0 {
		den = 1
	}

	for i := range coeffs {
		coeffs[i] = tw.Lerp(from, to, tw.Duration*float64(i)/den)
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}
