package effect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/command"
	"github.com/cwbudde/algo-automation/dsp/core"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

const defaultFilterCutoffHz = 1000.0

// FilterControlOption mutates filter control construction parameters.
type FilterControlOption func(*filterControlConfig) error

type filterControlConfig struct {
	cutoffHz float64
	mix      bounded.Mix
	capacity int
}

// WithFilterCutoff sets the starting cutoff frequency in Hz. The
// default is 1000.
func WithFilterCutoff(hz float64) FilterControlOption {
	return func(cfg *filterControlConfig) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("filter control: cutoff must be > 0 Hz: %f", hz)
		}

		cfg.cutoffHz = hz

		return nil
	}
}

// WithFilterMix sets the starting dry/wet blend. The default is
// [bounded.Wet].
func WithFilterMix(m bounded.Mix) FilterControlOption {
	return func(cfg *filterControlConfig) error {
		_, err := bounded.ParseMix(float32(m))
		if err != nil {
			return fmt.Errorf("filter control: %w", err)
		}

		cfg.mix = m

		return nil
	}
}

// WithFilterCommandCapacity sets how many pending commands each of the
// two control channels holds before dropping. The default is 16.
func WithFilterCommandCapacity(n int) FilterControlOption {
	return func(cfg *filterControlConfig) error {
		if n <= 0 {
			return fmt.Errorf("filter control: command capacity must be > 0: %d", n)
		}

		cfg.capacity = n

		return nil
	}
}

// FilterControl runs a one-pole lowpass over both channels with a
// tweenable cutoff frequency and a tweenable dry/wet blend. The
// smoothing coefficient is derived from the block's dt, so the cutoff
// tracks the frequency in Hz at any sample rate.
type FilterControl struct {
	cutoffHz *param.Parameter[tween.Scalar]
	mix      *param.Parameter[bounded.Mix]

	cutoffReader *command.Reader[param.Command[tween.Scalar]]
	mixReader    *command.Reader[param.Command[bounded.Mix]]

	stateL float64
	stateR float64
}

// FilterControlHandle is the control-thread surface of a
// [FilterControl].
type FilterControlHandle struct {
	cutoffWriter *command.Writer[param.Command[tween.Scalar]]
	mixWriter    *command.Writer[param.Command[bounded.Mix]]
}

// NewFilterControl creates the effect and its control handle.
func NewFilterControl(opts ...FilterControlOption) (*FilterControl, *FilterControlHandle, error) {
	cfg := filterControlConfig{
		cutoffHz: defaultFilterCutoffHz,
		mix:      bounded.Wet,
		capacity: defaultCommandCapacity,
	}

	for _, opt := range opts {
		err := opt(&cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	cutoffWriter, cutoffReader, err := command.New[param.Command[tween.Scalar]](cfg.capacity)
	if err != nil {
		return nil, nil, err
	}

	mixWriter, mixReader, err := command.New[param.Command[bounded.Mix]](cfg.capacity)
	if err != nil {
		return nil, nil, err
	}

	fx := &FilterControl{
		cutoffHz:     param.New(param.Fixed(tween.Scalar(cfg.cutoffHz)), tween.Scalar(cfg.cutoffHz)),
		mix:          param.New(param.Fixed(cfg.mix), cfg.mix),
		cutoffReader: cutoffReader,
		mixReader:    mixReader,
	}

	handle := &FilterControlHandle{
		cutoffWriter: cutoffWriter,
		mixWriter:    mixWriter,
	}

	return fx, handle, nil
}

// CutoffHz returns the current cutoff frequency. Audio thread only.
func (e *FilterControl) CutoffHz() float64 {
	return float64(e.cutoffHz.Value())
}

// Reset clears the filter memory.
func (e *FilterControl) Reset() {
	e.stateL = 0
	e.stateR = 0
}

// StartBlock drains pending cutoff and mix commands into the
// parameters.
func (e *FilterControl) StartBlock() {
	e.cutoffHz.Drain(e.cutoffReader)
	e.mix.Drain(e.mixReader)
}

// Process advances both parameters by dt, filters the frame, and
// blends dry and wet per the mix parameter.
func (e *FilterControl) Process(f Frame, dt float64, info *param.Info) Frame {
	e.cutoffHz.Update(dt, info)
	e.mix.Update(dt, info)

	alpha := 1 - math.Exp(-2*math.Pi*float64(e.cutoffHz.Value())*dt)
	alpha = core.Clamp(alpha, 0, 1)

	e.stateL = core.FlushDenormals(e.stateL + alpha*(float64(f.Left)-e.stateL))
	e.stateR = core.FlushDenormals(e.stateR + alpha*(float64(f.Right)-e.stateR))

	wet := Frame{Left: float32(e.stateL), Right: float32(e.stateR)}
	m := float32(e.mix.Value())

	return f.Scale(1 - m).Add(wet.Scale(m))
}

// SetCutoff eases the cutoff toward target Hz.
func (h *FilterControlHandle) SetCutoff(hz float64, tw tween.Tween) bool {
	return h.cutoffWriter.Push(param.Tweened(param.Fixed(tween.Scalar(hz)), tw))
}

// SetCutoffImmediate snaps the cutoff to hz, cancelling any in-flight
// tween.
func (h *FilterControlHandle) SetCutoffImmediate(hz float64) bool {
	return h.cutoffWriter.Push(param.Immediate(tween.Scalar(hz)))
}

// SetMix eases the dry/wet blend toward target.
func (h *FilterControlHandle) SetMix(m bounded.Mix, tw tween.Tween) bool {
	return h.mixWriter.Push(param.Tweened(param.Fixed(m), tw))
}

// SetMixImmediate snaps the dry/wet blend to m, cancelling any
// in-flight tween.
func (h *FilterControlHandle) SetMixImmediate(m bounded.Mix) bool {
	return h.mixWriter.Push(param.Immediate(m))
}

// Dropped returns how many commands have been dropped across both
// control channels.
func (h *FilterControlHandle) Dropped() uint64 {
	return h.cutoffWriter.Dropped() + h.mixWriter.Dropped()
}
