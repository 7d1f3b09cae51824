package effect

import (
	"fmt"

	"github.com/cwbudde/algo-automation/dsp/bounded"
	"github.com/cwbudde/algo-automation/dsp/command"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

const defaultCommandCapacity = 16

// PanningControlOption mutates panning control construction parameters.
type PanningControlOption func(*panningControlConfig) error

type panningControlConfig struct {
	initial  param.Value[bounded.Panning]
	capacity int
}

// WithInitialPanning sets the stereo position the effect starts at.
// The default is [bounded.Center].
func WithInitialPanning(p bounded.Panning) PanningControlOption {
	return func(cfg *panningControlConfig) error {
		_, err := bounded.ParsePanning(float32(p))
		if err != nil {
			return fmt.Errorf("panning control: %w", err)
		}

		cfg.initial = param.Fixed(p)

		return nil
	}
}

// WithPanningSource links the panning to another live parameter,
// translated through the mapping.
func WithPanningSource(id param.ID, mapping param.Mapping[bounded.Panning]) PanningControlOption {
	return func(cfg *panningControlConfig) error {
		if id == "" {
			return fmt.Errorf("panning control: empty source parameter id")
		}

		cfg.initial = param.FromParameter(id, mapping)

		return nil
	}
}

// WithPanningCommandCapacity sets how many pending commands the
// control channel holds before dropping. The default is 16.
func WithPanningCommandCapacity(n int) PanningControlOption {
	return func(cfg *panningControlConfig) error {
		if n <= 0 {
			return fmt.Errorf("panning control: command capacity must be > 0: %d", n)
		}

		cfg.capacity = n

		return nil
	}
}

// PanningControl adjusts the stereo position of the audio passing
// through it, smoothly following tweened pan commands. It applies the
// constant-power law from [Frame.Panned]; that crossfade policy lives
// here at the effect, not in the value type.
type PanningControl struct {
	panning *param.Parameter[bounded.Panning]
	reader  *command.Reader[param.Command[bounded.Panning]]
}

// PanningControlHandle is the control-thread surface of a
// [PanningControl]. All methods return immediately; they report false
// when the command channel is full and the command was dropped.
type PanningControlHandle struct {
	writer *command.Writer[param.Command[bounded.Panning]]
}

// NewPanningControl creates the effect and its control handle. The
// effect belongs to the audio thread, the handle to the control
// thread; they may be used concurrently.
func NewPanningControl(opts ...PanningControlOption) (*PanningControl, *PanningControlHandle, error) {
	cfg := panningControlConfig{
		initial:  param.Fixed(bounded.Center),
		capacity: defaultCommandCapacity,
	}

	for _, opt := range opts {
		err := opt(&cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	writer, reader, err := command.New[param.Command[bounded.Panning]](cfg.capacity)
	if err != nil {
		return nil, nil, err
	}

	fx := &PanningControl{
		panning: param.New(cfg.initial, bounded.Center),
		reader:  reader,
	}

	return fx, &PanningControlHandle{writer: writer}, nil
}

// Panning returns the current stereo position. Audio thread only.
func (e *PanningControl) Panning() bounded.Panning {
	return e.panning.Value()
}

// StartBlock drains pending pan commands into the parameter.
func (e *PanningControl) StartBlock() {
	e.panning.Drain(e.reader)
}

// Process advances the pan parameter by dt and positions the frame.
func (e *PanningControl) Process(f Frame, dt float64, info *param.Info) Frame {
	e.panning.Update(dt, info)

	return f.Panned(e.panning.Value())
}

// SetPanning eases the stereo position toward target.
func (h *PanningControlHandle) SetPanning(target bounded.Panning, tw tween.Tween) bool {
	return h.writer.Push(param.Tweened(param.Fixed(target), tw))
}

// SetPanningValue eases the stereo position toward a target value,
// which may reference another live parameter.
func (h *PanningControlHandle) SetPanningValue(target param.Value[bounded.Panning], tw tween.Tween) bool {
	return h.writer.Push(param.Tweened(target, tw))
}

// SetPanningImmediate snaps the stereo position to v, cancelling any
// in-flight tween.
func (h *PanningControlHandle) SetPanningImmediate(v bounded.Panning) bool {
	return h.writer.Push(param.Immediate(v))
}

// Dropped returns how many pan commands have been dropped due to a
// full channel.
func (h *PanningControlHandle) Dropped() uint64 {
	return h.writer.Dropped()
}
