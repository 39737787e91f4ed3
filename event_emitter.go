package libemit

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

var nopLogger = newZapLogger(nil)

// Emitter maps event names to ordered listeners. The zero value is ready to use, which lets
// any struct become an emitter by embedding it (see Extend).
//
// The registry lock is never held while a listener runs, so listeners may call On, Off and
// Emit on the emitter that invoked them.
type Emitter struct {
	registry map[string][]*entry
	mu       sync.Mutex

	sender       Interface
	scheduler    Scheduler
	errorHandler ErrorHandler
	logger       logger
}

type dispatch struct {
	event   string
	entries []*entry
}

// New creates an Emitter with an empty registry.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		registry: make(map[string][]*entry),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = nopLogger
	}
	e.logger = e.logger.WithField("type", "event_emitter")

	return e
}

func (e *Emitter) emitter() *Emitter {
	return e
}

func (e *Emitter) log() logger {
	if e.logger == nil {
		return nopLogger
	}
	return e.logger
}

func (e *Emitter) senderOrSelf() Interface {
	if e.sender != nil {
		return e.sender
	}
	return e
}

func (e *Emitter) schedulerOrDefault() Scheduler {
	if e.scheduler != nil {
		return e.scheduler
	}
	return GoScheduler
}

// getOrInsert returns the entries under the exact key, creating the key if absent.
// +checklocks:mu
func (e *Emitter) getOrInsert(event string) []*entry {
	if e.registry == nil {
		e.registry = make(map[string][]*entry)
	}

	entries, found := e.registry[event]
	if !found {
		e.registry[event] = nil
	}
	return entries
}

// matchEvents returns the registry keys matched by ev, sorted.
// +checklocks:mu
func (e *Emitter) matchEvents(ev EventName) []string {
	if ev.Kind() == Namespaced {
		e.getOrInsert(ev.String())
		return []string{ev.String()}
	}

	var events []string
	for event := range e.registry {
		if ev.Matches(event) {
			events = append(events, event)
		}
	}
	slices.Sort(events)
	return events
}

func handles(entries []*entry) []*Listener {
	listeners := make([]*Listener, len(entries))
	for i, en := range entries {
		listeners[i] = en.listener
	}
	return listeners
}

// Listeners returns the listeners registered under the exact event name, in registration
// order. An absent event is registered with no listeners as a side effect. The returned
// slice is a copy.
func (e *Emitter) Listeners(event string) []*Listener {
	if event == "" {
		return []*Listener{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return handles(e.getOrInsert(event))
}

// Registry returns a copy of the whole registry, including events whose listeners have all
// been removed.
func (e *Emitter) Registry() map[string][]*Listener {
	e.mu.Lock()
	defer e.mu.Unlock()

	registry := make(map[string][]*Listener, len(e.registry))
	for event, entries := range e.registry {
		registry[event] = handles(entries)
	}
	return registry
}

// On appends the listener to the event. Bare namespaces (".ns") are rejected.
func (e *Emitter) On(event string, l *Listener, opts ...OnOption) error {
	if _, err := parseEmittable(event); err != nil {
		return err
	}
	if !l.valid() {
		return errors.Wrapf(ErrListenerRequired, "event %q", event)
	}

	o := newOnOptions(opts)

	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.getOrInsert(event)
	e.registry[event] = append(entries, &entry{listener: l, once: o.once})

	return nil
}

// OnFunc registers fn and returns the handle needed to remove it.
func (e *Emitter) OnFunc(event string, fn ListenerFunc, opts ...OnOption) (*Listener, error) {
	l := NewListener(fn)
	if err := e.On(event, l, opts...); err != nil {
		return nil, err
	}
	return l, nil
}

// Once registers a listener that is removed right before its first invocation.
func (e *Emitter) Once(event string, l *Listener) error {
	return e.On(event, l, WithOnce())
}

// OnMany registers several listeners at once, in event name order. Nothing is registered if
// any of the pairs is invalid.
func (e *Emitter) OnMany(listeners map[string]*Listener, opts ...OnOption) error {
	events := slices.Sorted(maps.Keys(listeners))

	for _, event := range events {
		if _, err := parseEmittable(event); err != nil {
			return err
		}
		if !listeners[event].valid() {
			return errors.Wrapf(ErrListenerRequired, "event %q", event)
		}
	}

	for _, event := range events {
		if err := e.On(event, listeners[event], opts...); err != nil {
			return err
		}
	}

	return nil
}

// Off removes listeners:
//   - Off("") removes every listener of every event
//   - Off(event) removes every listener of the events matched by event, which may be a plain
//     name ("foo", also matching "foo.ns"), a namespaced name ("foo.ns") or a bare namespace (".ns")
//   - Off(event, l...) removes the given listeners from the exact event
//
// Events stay known to the registry after their listeners are removed. Use Reset to forget them.
func (e *Emitter) Off(event string, listeners ...*Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if event == "" {
		for ev := range e.registry {
			e.registry[ev] = nil
		}
		e.log().Debugf("removed all listeners of %d events", len(e.registry))
		return
	}

	if len(listeners) == 0 {
		ev, _ := ParseEventName(event)

		removed := 0
		for _, matched := range e.matchEvents(ev) {
			removed += len(e.registry[matched])
			e.registry[matched] = nil
		}
		e.log().Debugf("removed %d listeners matching %q", removed, event)
		return
	}

	for _, l := range listeners {
		entries := e.registry[event]
		idx := slices.IndexFunc(entries, func(en *entry) bool { return en.listener == l })
		if idx < 0 {
			continue
		}
		e.registry[event] = slices.Delete(entries, idx, idx+1)
	}
}

// Reset forgets every event and listener.
func (e *Emitter) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.registry = make(map[string][]*entry)
}

func (e *Emitter) removeEntry(event string, en *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.registry[event]
	if idx := slices.Index(entries, en); idx >= 0 {
		e.registry[event] = slices.Delete(entries, idx, idx+1)
	}
}

// snapshot copies the entries of every event matched by ev so that registry changes made by
// listeners do not affect the ongoing emission.
func (e *Emitter) snapshot(ev EventName) []dispatch {
	e.mu.Lock()
	defer e.mu.Unlock()

	events := e.matchEvents(ev)
	batch := make([]dispatch, 0, len(events))
	for _, event := range events {
		entries := e.registry[event]
		if len(entries) == 0 {
			continue
		}
		batch = append(batch, dispatch{event: event, entries: slices.Clone(entries)})
	}
	return batch
}

func (e *Emitter) invoke(event string, en *entry, sender Interface, args any) error {
	if !en.claim() {
		return nil
	}
	if en.once {
		e.removeEntry(event, en)
		e.log().Debugf("removed once listener of %q", event)
	}
	return en.listener.call(sender, args)
}

func (e *Emitter) handleError(event string, err error) {
	if e.errorHandler != nil {
		e.errorHandler(event, err)
		return
	}
	e.log().Errorf("listener of %q failed: %s", event, err)
}

// Emit invokes, with the sender and args, every listener of the events matched by event (see
// Off for the matching rules). Bare namespaces are rejected.
//
// Listeners run synchronously in registration order, events in name order. The first listener
// error aborts the emission and is returned as is. With WithAsync every invocation is handed to
// the scheduler instead and Emit returns right away; errors then go to the ErrorHandler.
func (e *Emitter) Emit(event string, args any, opts ...EmitOption) error {
	ev, err := parseEmittable(event)
	if err != nil {
		return err
	}

	o := newEmitOptions(opts)
	sender := e.senderOrSelf()

	for _, d := range e.snapshot(ev) {
		for _, en := range d.entries {
			if o.async {
				e.schedulerOrDefault().Schedule(func() {
					if err := e.invoke(d.event, en, sender, args); err != nil {
						e.handleError(d.event, err)
					}
				})
				continue
			}

			if err := e.invoke(d.event, en, sender, args); err != nil {
				return err
			}
		}
	}

	return nil
}
