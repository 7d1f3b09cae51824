package effect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-automation/dsp/command"
	"github.com/cwbudde/algo-automation/dsp/core"
	"github.com/cwbudde/algo-automation/dsp/param"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

// VolumeControlOption mutates volume control construction parameters.
type VolumeControlOption func(*volumeControlConfig) error

type volumeControlConfig struct {
	initialDB float64
	capacity  int
}

// WithInitialVolumeDB sets the starting gain in dB. The default is 0.
func WithInitialVolumeDB(db float64) VolumeControlOption {
	return func(cfg *volumeControlConfig) error {
		if math.IsNaN(db) || math.IsInf(db, 0) {
			return fmt.Errorf("volume control: gain must be finite: %f", db)
		}

		cfg.initialDB = db

		return nil
	}
}

// WithVolumeCommandCapacity sets how many pending commands the control
// channel holds before dropping. The default is 16.
func WithVolumeCommandCapacity(n int) VolumeControlOption {
	return func(cfg *volumeControlConfig) error {
		if n <= 0 {
			return fmt.Errorf("volume control: command capacity must be > 0: %d", n)
		}

		cfg.capacity = n

		return nil
	}
}

// VolumeControl scales the audio passing through it by a tweenable
// gain, expressed in dB on the control surface and converted to linear
// amplitude per frame.
type VolumeControl struct {
	gainDB *param.Parameter[tween.Scalar]
	reader *command.Reader[param.Command[tween.Scalar]]
}

// VolumeControlHandle is the control-thread surface of a
// [VolumeControl].
type VolumeControlHandle struct {
	writer *command.Writer[param.Command[tween.Scalar]]
}

// NewVolumeControl creates the effect and its control handle.
func NewVolumeControl(opts ...VolumeControlOption) (*VolumeControl, *VolumeControlHandle, error) {
	cfg := volumeControlConfig{capacity: defaultCommandCapacity}

	for _, opt := range opts {
		err := opt(&cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	writer, reader, err := command.New[param.Command[tween.Scalar]](cfg.capacity)
	if err != nil {
		return nil, nil, err
	}

	fx := &VolumeControl{
		gainDB: param.New(param.Fixed(tween.Scalar(cfg.initialDB)), 0),
		reader: reader,
	}

	return fx, &VolumeControlHandle{writer: writer}, nil
}

// VolumeDB returns the current gain in dB. Audio thread only.
func (e *VolumeControl) VolumeDB() float64 {
	return float64(e.gainDB.Value())
}

// StartBlock drains pending volume commands into the parameter.
func (e *VolumeControl) StartBlock() {
	e.gainDB.Drain(e.reader)
}

// Process advances the gain parameter by dt and scales the frame.
func (e *VolumeControl) Process(f Frame, dt float64, info *param.Info) Frame {
	e.gainDB.Update(dt, info)

	return f.Scale(float32(core.DBToLinear(float64(e.gainDB.Value()))))
}

// SetVolume eases the gain toward target dB.
func (h *VolumeControlHandle) SetVolume(db float64, tw tween.Tween) bool {
	return h.writer.Push(param.Tweened(param.Fixed(tween.Scalar(db)), tw))
}

// SetVolumeImmediate snaps the gain to db, cancelling any in-flight
// tween.
func (h *VolumeControlHandle) SetVolumeImmediate(db float64) bool {
	return h.writer.Push(param.Immediate(tween.Scalar(db)))
}

// Dropped returns how many volume commands have been dropped due to a
// full channel.
func (h *VolumeControlHandle) Dropped() uint64 {
	return h.writer.Dropped()
}
