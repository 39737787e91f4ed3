package libemit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type EventNameKind byte

const (
	// Plain is an event name without namespace, e.g. "foo".
	Plain EventNameKind = iota + 1
	// Namespaced is an event name tagged with a namespace, e.g. "foo.ns".
	Namespaced
	// NamespaceOnly is a bare namespace, e.g. ".ns". It can only be used to match events.
	NamespaceOnly
)

func (k EventNameKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Namespaced:
		return "namespaced"
	case NamespaceOnly:
		return "namespace-only"
	default:
		return fmt.Sprintf("EventNameKind(%d)", byte(k))
	}
}

// EventName is a parsed event name. Keys in the registry are always the raw string, EventName
// only drives how an operation selects them.
type EventName struct {
	raw       string
	kind      EventNameKind
	name      string
	namespace string
}

// ParseEventName parses raw into an EventName. Only the empty string is rejected.
func ParseEventName(raw string) (EventName, error) {
	if raw == "" {
		return EventName{}, ErrEventNameRequired
	}

	idx := strings.IndexByte(raw, '.')
	switch {
	case idx == 0:
		return EventName{raw: raw, kind: NamespaceOnly, namespace: raw[1:]}, nil
	case idx > 0:
		return EventName{raw: raw, kind: Namespaced, name: raw[:idx], namespace: raw[idx+1:]}, nil
	default:
		return EventName{raw: raw, kind: Plain, name: raw}, nil
	}
}

// parseEmittable parses raw and rejects bare namespaces, which can neither be
// listened to nor emitted.
func parseEmittable(raw string) (EventName, error) {
	ev, err := ParseEventName(raw)
	if err != nil {
		return ev, err
	}
	if ev.IsNamespaceOnly() {
		return ev, errors.Wrapf(ErrBareNamespace, "event %q", raw)
	}
	return ev, nil
}

func (e EventName) Kind() EventNameKind { return e.kind }

func (e EventName) Name() string { return e.name }

func (e EventName) Namespace() string { return e.namespace }

func (e EventName) IsNamespaceOnly() bool { return e.kind == NamespaceOnly }

func (e EventName) String() string { return e.raw }

// Matches reports whether the registry key belongs to this event name:
//   - ".ns" matches every key containing ".ns" (substring, so ".ns" also matches "foo.nsx")
//   - "foo.ns" matches only "foo.ns"
//   - "foo" matches "foo" and every "foo.<anything>"
func (e EventName) Matches(key string) bool {
	switch e.kind {
	case NamespaceOnly:
		return strings.Contains(key, e.raw)
	case Namespaced:
		return key == e.raw
	case Plain:
		return key == e.raw || strings.HasPrefix(key, e.raw+".")
	default:
		return false
	}
}
