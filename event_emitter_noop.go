package libemit

// NoopEmitter satisfies Interface without registering or invoking anything. Use it where
// events are disabled.
type NoopEmitter struct{}

var _ Interface = NoopEmitter{}

func (NoopEmitter) Listeners(string) []*Listener { return []*Listener{} }

func (NoopEmitter) Registry() map[string][]*Listener { return map[string][]*Listener{} }

// On validates its arguments like Emitter.On and discards the listener.
func (NoopEmitter) On(event string, l *Listener, _ ...OnOption) error {
	if _, err := parseEmittable(event); err != nil {
		return err
	}
	if !l.valid() {
		return ErrListenerRequired
	}
	return nil
}

func (NoopEmitter) Off(string, ...*Listener) {}

// Emit validates the event name and does nothing else.
func (NoopEmitter) Emit(event string, _ any, _ ...EmitOption) error {
	_, err := parseEmittable(event)
	return err
}
