package authn

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type AuthStateEvent string

const (
	SignedIn  AuthStateEvent = "SIGNED_IN"
	SignedOut AuthStateEvent = "SIGNED_OUT"
)

type AuthStateListener interface {
	OnAuthStateChange(ctx context.Context, event AuthStateEvent, user *User) error
}

type AuthStateListenerFunc func(ctx context.Context, event AuthStateEvent, user *User) error

func (fn AuthStateListenerFunc) OnAuthStateChange(ctx context.Context, event AuthStateEvent, user *User) error {
	return fn(ctx, event, user)
}

// Events dispatches auth state changes to the subscribed listeners, in
// subscription order.
type Events struct {
	mutex     sync.RWMutex
	nextID    int
	listeners map[int]AuthStateListener
	order     []int
}

// Subscribe registers a listener and returns the function removing it.
func (e *Events) Subscribe(listener AuthStateListener) func() {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	id := e.nextID
	e.nextID++

	e.listeners[id] = listener
	e.order = append(e.order, id)

	return func() {
		e.mutex.Lock()
		defer e.mutex.Unlock()

		delete(e.listeners, id)
	}
}

// Publish calls every listener with the given event. All listeners are
// called even if one of them fails; the first error is returned.
func (e *Events) Publish(ctx context.Context, event AuthStateEvent, user *User) error {
	e.mutex.RLock()
	listeners := make([]AuthStateListener, 0, len(e.listeners))
	for _, id := range e.order {
		if l, exists := e.listeners[id]; exists {
			listeners = append(listeners, l)
		}
	}
	e.mutex.RUnlock()

	var first error

	for _, l := range listeners {
		if err := l.OnAuthStateChange(ctx, event, user); err != nil {
			slog.ErrorContext(ctx, "auth state listener failed", slog.String("event", string(event)), slogx.Error(err))

			if first == nil {
				first = errors.WithStack(err)
			}
		}
	}

	return first
}

func NewEvents() *Events {
	return &Events{
		listeners: make(map[int]AuthStateListener),
		order:     make([]int, 0),
	}
}
