package lazyevents

// Events is the operation set an Emitter exposes. Accept it where a component
// only needs to publish or subscribe and should not see the attached value.
type Events[T any] interface {
	// On registers a listener, replaying the latest emit unless NonLazy is given.
	On(label string, listener *Listener[T], opts ...ListenOption) (*Emitter[T], error)

	// One registers a listener that unregisters itself after one invocation.
	One(label string, listener *Listener[T], opts ...ListenOption) (*Emitter[T], error)

	// Off removes the given listeners from label, or the whole label when none
	// is given.
	Off(label string, listener ...*Listener[T]) *Emitter[T]

	// Emit dispatches args to the listeners of label and then to Wildcard.
	Emit(label string, args ...any) *Emitter[T]
}

var _ Events[struct{}] = (*Emitter[struct{}])(nil)
