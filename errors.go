package lazyevents

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidListener = errors.New("listener must wrap a non-nil function")
)

func wrapInvalidListener(label string) error {
	return errors.Wrapf(ErrInvalidListener, "cannot register on %q", label)
}
