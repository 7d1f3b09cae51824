package param

import "github.com/cwbudde/algo-automation/dsp/tween"

// Kind discriminates the command payload.
type Kind uint8

const (
	// KindSetTweened begins a new tween toward a target, replacing any
	// in-flight tween.
	KindSetTweened Kind = iota
	// KindSetImmediate assigns a value outright, cancelling any
	// in-flight tween.
	KindSetImmediate
)

// Command is a value-change request produced on the control thread and
// consumed exactly once, in FIFO order, on the audio thread.
type Command[T tween.Tweenable[T]] struct {
	Kind   Kind
	Target Value[T]
	Tween  tween.Tween
}

// Tweened builds a command that eases the parameter toward target.
func Tweened[T tween.Tweenable[T]](target Value[T], tw tween.Tween) Command[T] {
	return Command[T]{Kind: KindSetTweened, Target: target, Tween: tw}
}

// Immediate builds a command that snaps the parameter to v.
func Immediate[T tween.Tweenable[T]](v T) Command[T] {
	return Command[T]{Kind: KindSetImmediate, Target: Fixed(v)}
}
