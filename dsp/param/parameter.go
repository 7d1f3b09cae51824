package param

import (
	"github.com/cwbudde/algo-automation/dsp/command"
	"github.com/cwbudde/algo-automation/dsp/tween"
)

// Parameter is a mutable automation cell: a current value plus an
// optional in-flight tween toward a target.
//
// A parameter is either idle or tweening. Commands move it between the
// two states, and Update advances an active tween by the block's dt.
// Once handed to the audio thread a parameter must not be touched from
// anywhere else; all cross-thread mutation goes through commands.
type Parameter[T tween.Tweenable[T]] struct {
	value    Value[T]
	raw      T
	from     T
	tw       tween.Tween
	elapsed  float64
	tweening bool
}

// New creates a parameter at the given initial target. def seeds the
// current value when the target is a parameter reference that has not
// resolved yet.
func New[T tween.Tweenable[T]](initial Value[T], def T) *Parameter[T] {
	p := &Parameter[T]{value: initial, raw: def}

	if v, ok := initial.Resolve(nil); ok {
		p.raw = v
	}

	return p
}

// Value returns the parameter's current value.
func (p *Parameter[T]) Value() T {
	return p.raw
}

// Tweening reports whether a tween is in flight.
func (p *Parameter[T]) Tweening() bool {
	return p.tweening
}

// Apply executes one command. Later commands always win over earlier
// ones: a new tween restarts from the current value, and an immediate
// set cancels any tween outright.
func (p *Parameter[T]) Apply(cmd Command[T]) {
	switch cmd.Kind {
	case KindSetImmediate:
		p.value = cmd.Target
		p.tweening = false

		if v, ok := cmd.Target.Resolve(nil); ok {
			p.raw = v
		}
	case KindSetTweened:
		p.from = p.raw
		p.value = cmd.Target
		p.tw = cmd.Tween
		p.elapsed = 0
		p.tweening = true
	}
}

// Drain pops every pending command from r in FIFO order and applies
// each in sequence. Call it once at the start of each processing
// block, before any Update.
func (p *Parameter[T]) Drain(r *command.Reader[Command[T]]) {
	for {
		cmd, ok := r.Pop()
		if !ok {
			return
		}

		p.Apply(cmd)
	}
}

// Update advances the parameter by dt seconds. Call it exactly once
// per frame (or block) on the audio thread; calling it more often
// double-advances the tween.
//
// Linked targets are re-resolved through info on every update. When
// the linked parameter cannot be found the current value is kept; the
// parameter degrades to holding its last known value rather than
// failing.
func (p *Parameter[T]) Update(dt float64, info *Info) {
	if !p.tweening {
		if p.value.Linked() {
			if v, ok := p.value.Resolve(info); ok {
				p.raw = v
			}
		}

		return
	}

	p.elapsed += dt

	target, ok := p.value.Resolve(info)
	if !ok {
		return
	}

	if p.tw.Finished(p.elapsed) {
		p.raw = target
		p.tweening = false

		return
	}

	p.raw = p.from.Interpolate(target, p.tw.Ease(p.elapsed/p.tw.Duration))
}
