package effect

import (
	"sync/atomic"

	"github.com/cwbudde/algo-automation/dsp/param"
)

// Effect is the contract every DSP unit in a chain implements.
//
// The driver must call StartBlock exactly once per processing block,
// before the first Process call of that block, and then Process once
// per frame in sample order with the block's dt and a stable Info.
type Effect interface {
	// StartBlock runs once per block before sample processing. Effects
	// drain their command channels into parameters here. It must be
	// cheap and allocation-free.
	StartBlock()
	// Process transforms one frame. It must not block, allocate, or
	// depend on hidden global state.
	Process(f Frame, dt float64, info *param.Info) Frame
}

var idToken atomic.Uint64

// ID identifies an effect for external addressing and removal. It
// combines a process-wide-unique token with the owning track's index
// and is never consulted in the per-frame path.
type ID struct {
	token uint64
	track int
}

// NewID allocates a fresh ID on the given track. The zero ID is never
// allocated, so it can serve as a "no effect" sentinel.
func NewID(track int) ID {
	return ID{token: idToken.Add(1), track: track}
}

// Track returns the index of the track that owns the effect.
func (id ID) Track() int {
	return id.track
}
