package libemit

import (
	"github.com/stretchr/testify/mock"
)

type mockListener struct {
	mock.Mock

	// tapCall runs after the call has been recorded.
	tapCall func(sender Interface, args any)
}

func (m *mockListener) Handle(sender Interface, args any) error {
	ret := m.Called(sender, args)
	if m.tapCall != nil {
		m.tapCall(sender, args)
	}
	return ret.Error(0)
}

func (m *mockListener) Listener() *Listener {
	return NewListener(m.Handle)
}
