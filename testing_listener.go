package lazyevents

import (
	"github.com/stretchr/testify/mock"
)

type mockListener[T any] struct {
	mock.Mock

	tapCall func(e *Emitter[T], args ...any)
}

func (m *mockListener[T]) Handle(e *Emitter[T], args ...any) {
	if m.tapCall != nil {
		m.tapCall(e, args...)
	}
	m.MethodCalled("Handle", args...)
}

func (m *mockListener[T]) Listener() *Listener[T] {
	return NewListener[T](m.Handle)
}
