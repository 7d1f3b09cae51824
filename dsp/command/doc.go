// Package command provides a bounded, lock-free, single-producer
// single-consumer channel for handing parameter-change commands from a
// control thread to a real-time audio thread.
//
// The channel is split at construction into a [Writer] for the control
// side and a [Reader] for the audio side. Neither side blocks, locks,
// or allocates after construction: a push onto a full channel drops
// the command and counts the drop instead of waiting, trading strict
// delivery for the audio thread's real-time guarantee.
package command
