package libemit

import (
	"sync/atomic"
)

type (
	// Interface is the capability set of an emitter. *Emitter implements it, and so does
	// any type embedding Emitter.
	Interface interface {
		// Listeners returns the listeners registered under the exact event name. The key is
		// created if absent.
		Listeners(event string) []*Listener
		// Registry returns every event name known to the emitter with its listeners.
		Registry() map[string][]*Listener
		// On registers a listener for an event.
		On(event string, l *Listener, opts ...OnOption) error
		// Off removes listeners. See Emitter.Off for the accepted call shapes.
		Off(event string, listeners ...*Listener)
		// Emit invokes the listeners of every event matching the given name.
		Emit(event string, args any, opts ...EmitOption) error
	}

	// ListenerFunc is invoked with the emitting value as sender and the payload given to Emit.
	ListenerFunc func(sender Interface, args any) error

	// Listener is a registration handle. Identity is the pointer, so keep the handle around
	// to remove the listener later.
	Listener struct {
		fn ListenerFunc
	}

	entry struct {
		listener *Listener
		once     bool
		fired    atomic.Bool
	}
)

// NewListener wraps fn into a Listener handle.
func NewListener(fn ListenerFunc) *Listener {
	return &Listener{fn: fn}
}

func (l *Listener) valid() bool {
	return l != nil && l.fn != nil
}

func (l *Listener) call(sender Interface, args any) error {
	return l.fn(sender, args)
}

// claim reports whether the entry may run. Once entries can be claimed a single time.
func (e *entry) claim() bool {
	if !e.once {
		return true
	}
	return e.fired.CompareAndSwap(false, true)
}
