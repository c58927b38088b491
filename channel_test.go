package lazyevents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelRemove(t *testing.T) {
	noop := func(*Emitter[struct{}], ...any) {}
	a := NewListener[struct{}](noop)
	b := NewListener[struct{}](noop)

	ch := newChannel[struct{}]()
	ch.add(a)
	ch.add(b)
	ch.add(a)

	snap := ch.snapshot()

	assert.Equal(t, 2, ch.remove(a))
	assert.Equal(t, []*Listener[struct{}]{b}, ch.listeners)
	assert.Equal(t, 0, ch.remove(a))

	// snapshots taken earlier are unaffected
	assert.Equal(t, []*Listener[struct{}]{a, b, a}, snap)
}

func TestChannelRecord(t *testing.T) {
	ch := newChannel[struct{}]()
	assert.False(t, ch.hasEmitted)

	args := []any{"x"}
	ch.record(args)
	args[0] = "y"

	assert.True(t, ch.hasEmitted)
	assert.Equal(t, []any{"x"}, ch.lastArgs)

	ch.record(nil)
	assert.Nil(t, ch.lastArgs)
}
