package effect

import "github.com/cwbudde/algo-automation/dsp/param"

type chainEntry struct {
	id ID
	fx Effect
}

// Chain runs an ordered list of effects over each frame. It satisfies
// [Effect] itself, so chains can nest.
//
// Add and Remove are setup-time operations for the owner of the chain;
// they are not safe to call concurrently with processing.
type Chain struct {
	track   int
	entries []chainEntry
}

// NewChain creates an empty chain owned by the given track index.
func NewChain(track int) *Chain {
	return &Chain{track: track}
}

// Add appends fx to the chain and returns its addressing ID.
func (c *Chain) Add(fx Effect) ID {
	id := NewID(c.track)
	c.entries = append(c.entries, chainEntry{id: id, fx: fx})

	return id
}

// Remove deletes the effect with the given ID, preserving the order of
// the rest. It reports whether the ID was found.
func (c *Chain) Remove(id ID) bool {
	for i, e := range c.entries {
		if e.id == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of effects in the chain.
func (c *Chain) Len() int {
	return len(c.entries)
}

// StartBlock runs every effect's block-start hook in chain order.
func (c *Chain) StartBlock() {
	for _, e := range c.entries {
		e.fx.StartBlock()
	}
}

// Process runs the frame through every effect in chain order.
func (c *Chain) Process(f Frame, dt float64, info *param.Info) Frame {
	for _, e := range c.entries {
		f = e.fx.Process(f, dt, info)
	}

	return f
}

// ProcessBlock applies the whole driver contract to one block:
// StartBlock once, then Process per frame in order, in place.
func (c *Chain) ProcessBlock(frames []Frame, dt float64, info *param.Info) {
	c.StartBlock()

	for i := range frames {
		frames[i] = c.Process(frames[i], dt, info)
	}
}
