package lazyevents

// channel is the per-label record: listeners in registration order plus the
// arguments of the most recent Emit.
type channel[T any] struct {
	listeners  []*Listener[T]
	hasEmitted bool
	lastArgs   []any
}

func newChannel[T any]() *channel[T] {
	return &channel[T]{}
}

func (c *channel[T]) add(l *Listener[T]) {
	c.listeners = append(c.listeners, l)
}

// remove drops every entry identical to l and reports how many were dropped.
// Survivors keep their relative order.
func (c *channel[T]) remove(l *Listener[T]) int {
	kept := c.listeners[:0]
	for _, cur := range c.listeners {
		if cur != l {
			kept = append(kept, cur)
		}
	}
	removed := len(c.listeners) - len(kept)
	// clear the tail so dropped listeners can be collected
	for i := len(kept); i < len(c.listeners); i++ {
		c.listeners[i] = nil
	}
	c.listeners = kept
	return removed
}

func (c *channel[T]) record(args []any) {
	c.hasEmitted = true
	c.lastArgs = cloneArgs(args)
}

// snapshot returns a copy of the listener sequence so dispatch is unaffected by
// listeners registering or removing others while it runs.
func (c *channel[T]) snapshot() []*Listener[T] {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]*Listener[T], len(c.listeners))
	copy(out, c.listeners)
	return out
}
