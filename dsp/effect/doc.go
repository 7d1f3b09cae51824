// Package effect defines the processing contract for per-frame audio
// effects and provides effects whose parameters are automatable from a
// control thread.
//
// Every effect implements two methods: StartBlock, invoked once per
// processing block before any frame is touched (effects use it to
// drain pending parameter commands), and Process, the per-frame
// transform. The per-frame path never blocks, locks, allocates, or
// returns errors; numeric contract violations degrade to saturated
// values instead.
package effect
