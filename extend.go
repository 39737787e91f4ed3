package libemit

// Extender is implemented by every type embedding Emitter.
type Extender interface {
	Interface
	emitter() *Emitter
}

// Extend turns the Emitter embedded in target into target's own: listeners receive target as
// sender instead of the embedded Emitter.
//
//	type Thing struct {
//		libemit.Emitter
//		name string
//	}
//
//	thing := libemit.Extend(&Thing{})
//	thing.OnFunc("named", func(sender libemit.Interface, args any) error {
//		fmt.Println(sender.(*Thing).name)
//		return nil
//	})
func Extend[T Extender](target T) T {
	target.emitter().sender = target
	return target
}
