package session

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type EventKind int

const (
	EventLogin EventKind = iota + 1
	EventLogout
)

func (k EventKind) String() string {
	switch k {
	case EventLogin:
		return "login"
	case EventLogout:
		return "logout"
	}
	return "unknown"
}

// Reason says why a logout happened. It is empty for logins.
type Reason string

const (
	ReasonManual       Reason = "manual"
	ReasonExpired      Reason = "expired"
	ReasonInvalid      Reason = "invalid"
	ReasonUnauthorized Reason = "unauthorized"
)

type Event struct {
	Kind     EventKind
	Reason   Reason
	Identity *models.Identity
}

// Listener is called synchronously, on the goroutine that caused the
// transition, after the Manager has released its locks.
type Listener func(ctx context.Context, ev Event)

// Subscribe registers fn for every future event. The returned function
// removes it and is safe to call more than once.
func (m *Manager) Subscribe(fn Listener) func() {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()

	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn

	return func() {
		m.listenersMu.Lock()
		defer m.listenersMu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *Manager) publish(ctx context.Context, ev Event) {
	m.listenersMu.Lock()
	ids := make([]uint64, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	fns := make([]Listener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	m.listenersMu.Unlock()

	for _, fn := range fns {
		fn(ctx, ev)
	}
}
