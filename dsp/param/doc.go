// Package param provides smoothly automatable parameters for real-time
// audio processing.
//
// A [Parameter] owns a current value and an optional in-flight tween
// toward a target. The control thread never touches a parameter
// directly: it pushes [Command] values through a command channel, and
// the audio thread drains those commands once per processing block
// before advancing each parameter by the block's dt. After
// construction a parameter belongs exclusively to the audio thread.
//
// A parameter's target is a [Value]: either a fixed number or a
// non-owning reference to another live parameter, resolved through the
// [Info] context at read time so automation chains never form
// ownership cycles.
package param
