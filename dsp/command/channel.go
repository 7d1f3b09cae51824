package command

import (
	"fmt"
	"sync/atomic"
)

// ring is a fixed-capacity single-producer/single-consumer queue.
// One slot is kept empty to distinguish full from empty, so the buffer
// holds capacity+1 slots. head is advanced only by the reader, tail
// only by the writer.
type ring[T any] struct {
	buf     []T
	head    atomic.Uint64
	tail    atomic.Uint64
	dropped atomic.Uint64
}

// Writer is the control-side handle of a channel. It must be used from
// at most one goroutine at a time.
type Writer[T any] struct {
	r *ring[T]
}

// Reader is the audio-side handle of a channel. It must be used from
// at most one goroutine at a time.
type Reader[T any] struct {
	r *ring[T]
}

// New creates a channel that holds up to capacity pending commands and
// returns its two handles. The writer and reader may then be used
// concurrently with each other without further synchronization.
func New[T any](capacity int) (*Writer[T], *Reader[T], error) {
	if capacity <= 0 {
		return nil, nil, fmt.Errorf("command channel capacity must be > 0: %d", capacity)
	}

	r := &ring[T]{buf: make([]T, capacity+1)}

	return &Writer[T]{r: r}, &Reader[T]{r: r}, nil
}

// Push enqueues v without blocking. If the channel is full the command
// is dropped, the drop counter is incremented, and Push reports false.
func (w *Writer[T]) Push(v T) bool {
	tail := w.r.tail.Load()

	next := tail + 1
	if next == uint64(len(w.r.buf)) {
		next = 0
	}

	if next == w.r.head.Load() {
		w.r.dropped.Add(1)
		return false
	}

	w.r.buf[tail] = v
	w.r.tail.Store(next)

	return true
}

// Dropped returns the total number of commands dropped due to a full
// channel since construction.
func (w *Writer[T]) Dropped() uint64 {
	return w.r.dropped.Load()
}

// Pop dequeues the oldest pending command. It reports false when the
// channel is empty.
func (r *Reader[T]) Pop() (T, bool) {
	head := r.r.head.Load()
	if head == r.r.tail.Load() {
		var zero T
		return zero, false
	}

	v := r.r.buf[head]

	head++
	if head == uint64(len(r.r.buf)) {
		head = 0
	}

	r.r.head.Store(head)

	return v, true
}

// Len returns the number of commands currently pending. It is exact
// only when called from one of the two handle goroutines.
func (r *Reader[T]) Len() int {
	head := r.r.head.Load()
	tail := r.r.tail.Load()

	if tail >= head {
		return int(tail - head)
	}

	return int(uint64(len(r.r.buf)) - head + tail)
}

// Cap returns the channel capacity fixed at construction.
func (r *Reader[T]) Cap() int {
	return len(r.r.buf) - 1
}
