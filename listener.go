package lazyevents

import "sync/atomic"

type (
	// Func is the callable behind a Listener. e is the emitter the listener was
	// registered on; args are the values passed to Emit.
	Func[T any] func(e *Emitter[T], args ...any)

	// Listener is a registration handle. Off matches listeners by pointer, so
	// keep the handle returned by NewListener around to unregister later.
	Listener[T any] struct {
		fn Func[T]
	}
)

// NewListener wraps fn into a handle suitable for On, One and Off.
func NewListener[T any](fn Func[T]) *Listener[T] {
	return &Listener[T]{fn: fn}
}

func (l *Listener[T]) valid() bool {
	return l != nil && l.fn != nil
}

func (l *Listener[T]) call(e *Emitter[T], args []any) {
	l.fn(e, cloneArgs(args)...)
}

// onceListener removes its own handle from label after the first call.
type onceListener[T any] struct {
	label string
	inner *Listener[T]
	self  *Listener[T]
	fired atomic.Bool
}

func newOnceListener[T any](label string, inner *Listener[T]) *onceListener[T] {
	o := &onceListener[T]{label: label, inner: inner}
	o.self = NewListener[T](o.handle)
	return o
}

func (o *onceListener[T]) handle(e *Emitter[T], args ...any) {
	// A reentrant emit from inside inner would otherwise reach the handle again
	// before Off runs.
	if !o.fired.CompareAndSwap(false, true) {
		return
	}

	defer e.Off(o.label, o.self)

	o.inner.fn(e, args...)
}

func cloneArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}
