package libemit

import (
	"go.uber.org/zap"
)

type (
	// Option configures an Emitter.
	Option func(*Emitter)

	// OnOption configures a single registration.
	OnOption func(*onOptions)

	// EmitOption configures a single emission.
	EmitOption func(*emitOptions)

	onOptions struct {
		once bool
	}

	emitOptions struct {
		async bool
	}
)

// WithLogger sets the logger of the emitter. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Emitter) {
		e.logger = newZapLogger(l)
	}
}

// WithScheduler sets where asynchronous listener invocations run. Defaults to GoScheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Emitter) {
		e.scheduler = s
	}
}

// WithErrorHandler sets the handler for errors returned by asynchronously invoked listeners.
// By default they are logged.
func WithErrorHandler(h ErrorHandler) Option {
	return func(e *Emitter) {
		e.errorHandler = h
	}
}

// WithSender sets the value listeners receive as sender.
func WithSender(sender Interface) Option {
	return func(e *Emitter) {
		e.sender = sender
	}
}

// WithOnce removes the listener right before its first invocation.
func WithOnce() OnOption {
	return func(o *onOptions) {
		o.once = true
	}
}

// WithAsync makes Emit schedule every listener invocation instead of running it in place.
func WithAsync() EmitOption {
	return func(o *emitOptions) {
		o.async = true
	}
}

func newOnOptions(opts []OnOption) onOptions {
	var o onOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newEmitOptions(opts []EmitOption) emitOptions {
	var o emitOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
