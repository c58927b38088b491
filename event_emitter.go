package lazyevents

import (
	"sort"
	"sync"
)

// Wildcard is the label whose listeners receive every emission, with the
// originating label prepended to the arguments.
const Wildcard = "*"

// Emitter bundles a caller value with its own event registry. Every label keeps
// the arguments of its latest Emit so that listeners registered afterwards are
// replayed them (see Lazy).
//
// Listeners run synchronously on the goroutine calling Emit (or On, for
// replays). The registry lock is released before any listener runs, so
// listeners may freely call back into the emitter.
type Emitter[T any] struct {
	// Value is the caller-supplied value the emitter was attached to.
	Value T

	channels map[string]*channel[T]
	lock     sync.Mutex
	logger   Logger
}

// Attach creates an emitter around value with a fresh, empty registry.
// Attaching the same value twice yields two independent registries.
func Attach[T any](value T, opts ...Option) *Emitter[T] {
	cfg := newConfig(opts)
	return &Emitter[T]{
		Value:    value,
		channels: make(map[string]*channel[T]),
		logger:   cfg.logger.WithField("type", "lazy_events"),
	}
}

// New attaches an emitter to an empty value.
func New(opts ...Option) *Emitter[struct{}] {
	return Attach(struct{}{}, opts...)
}

// On registers listener for label. If label has already been emitted and the
// registration is lazy (the default) the listener is invoked right away with
// the latest arguments, before On returns.
func (e *Emitter[T]) On(label string, listener *Listener[T], opts ...ListenOption) (*Emitter[T], error) {
	if !listener.valid() {
		return nil, wrapInvalidListener(label)
	}

	cfg := newListenConfig(opts)

	e.lock.Lock()
	ch := e.channelLocked(label)
	ch.add(listener)
	replay := ch.hasEmitted && cfg.lazy
	args := ch.lastArgs
	e.lock.Unlock()

	if replay {
		e.logger.Debugf("replaying last emit of %q to new listener", label)
		listener.call(e, args)
	}

	return e, nil
}

// Listen wraps fn into a Listener, registers it with On and returns the handle.
func (e *Emitter[T]) Listen(label string, fn Func[T], opts ...ListenOption) (*Listener[T], error) {
	listener := NewListener(fn)
	if _, err := e.On(label, listener, opts...); err != nil {
		return nil, err
	}
	return listener, nil
}

// One is like On but the listener is unregistered after its first invocation.
// The registration uses its own handle, so Off(label, listener) does not
// remove it; Off(label) does.
func (e *Emitter[T]) One(label string, listener *Listener[T], opts ...ListenOption) (*Emitter[T], error) {
	if !listener.valid() {
		return nil, wrapInvalidListener(label)
	}

	once := newOnceListener(label, listener)
	return e.On(label, once.self, opts...)
}

// Off removes every registration of listener from label. Without a listener
// the whole label is dropped, including its last emitted arguments, and Off
// returns nil. Off also returns nil when label is unknown.
func (e *Emitter[T]) Off(label string, listener ...*Listener[T]) *Emitter[T] {
	e.lock.Lock()
	defer e.lock.Unlock()

	ch, ok := e.channels[label]
	if !ok {
		e.logger.Debugf("off on unknown label %q", label)
		return nil
	}

	if len(listener) == 0 {
		delete(e.channels, label)
		e.logger.Debugf("dropped label %q", label)
		return nil
	}

	for _, l := range listener {
		ch.remove(l)
	}

	return e
}

// Emit records args as the latest arguments of label and invokes its listeners
// in registration order, then the Wildcard listeners with label prepended.
// Both sequences are snapshotted when their phase starts. A panicking listener
// aborts the rest of the dispatch.
func (e *Emitter[T]) Emit(label string, args ...any) *Emitter[T] {
	e.lock.Lock()
	ch := e.channelLocked(label)
	ch.record(args)
	listeners := ch.snapshot()
	e.lock.Unlock()

	for _, l := range listeners {
		l.call(e, args)
	}

	e.lock.Lock()
	var wildcards []*Listener[T]
	if wc, ok := e.channels[Wildcard]; ok {
		wildcards = wc.snapshot()
	}
	e.lock.Unlock()

	if len(wildcards) == 0 {
		return e
	}

	labeled := make([]any, 0, len(args)+1)
	labeled = append(labeled, label)
	labeled = append(labeled, args...)

	for _, l := range wildcards {
		l.call(e, labeled)
	}

	return e
}

// ListenerCount returns how many registrations label currently holds.
func (e *Emitter[T]) ListenerCount(label string) int {
	e.lock.Lock()
	defer e.lock.Unlock()

	if ch, ok := e.channels[label]; ok {
		return len(ch.listeners)
	}
	return 0
}

// LastArgs returns a copy of the arguments of the latest Emit on label and
// whether label has been emitted since it was created.
func (e *Emitter[T]) LastArgs(label string) ([]any, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	ch, ok := e.channels[label]
	if !ok || !ch.hasEmitted {
		return nil, false
	}
	return cloneArgs(ch.lastArgs), true
}

// Labels returns the labels that currently have a channel, sorted.
func (e *Emitter[T]) Labels() []string {
	e.lock.Lock()
	defer e.lock.Unlock()

	labels := make([]string, 0, len(e.channels))
	for label := range e.channels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (e *Emitter[T]) channelLocked(label string) *channel[T] {
	ch, ok := e.channels[label]
	if !ok {
		ch = newChannel[T]()
		e.channels[label] = ch
		e.logger.Debugf("created label %q", label)
	}
	return ch
}
