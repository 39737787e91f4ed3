package libemit

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrEventNameRequired = errors.WithMessage(ErrInvalidArgument, "eventName is required")
	ErrListenerRequired  = errors.WithMessage(ErrInvalidArgument, "listener is required")
	ErrBareNamespace     = errors.WithMessage(
		ErrInvalidArgument,
		"eventName cannot be a bare namespace: prefix with an event name instead",
	)
)

// ErrorHandler receives failures of listeners that ran outside of the Emit call
// that scheduled them.
type ErrorHandler func(event string, err error)
