package board

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

type MutationState int32

const (
	MutationIdle MutationState = iota
	MutationPending
)

func (s MutationState) String() string {
	switch s {
	case MutationIdle:
		return "idle"
	case MutationPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Mutation tracks a single status update from dispatch to completion.
type Mutation struct {
	intent Intent
	state  atomic.Int32
	done   chan struct{}
	err    error
}

func (m *Mutation) Intent() Intent {
	return m.intent
}

func (m *Mutation) State() MutationState {
	return MutationState(m.state.Load())
}

// Done is closed once the store has answered and the notification has been
// emitted.
func (m *Mutation) Done() <-chan struct{} {
	return m.done
}

// Err returns the store failure, if any. It is only meaningful once Done is
// closed.
func (m *Mutation) Err() error {
	select {
	case <-m.done:
		return m.err
	default:
		return nil
	}
}

// Wait blocks until the mutation settles or the given context is done.
// Giving up waiting does not abort the mutation.
func (m *Mutation) Wait(ctx context.Context) error {
	select {
	case <-m.done:
		return m.err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func newMutation(intent Intent) *Mutation {
	m := &Mutation{
		intent: intent,
		done:   make(chan struct{}),
	}

	m.state.Store(int32(MutationPending))

	return m
}

func (m *Mutation) settle(err error) {
	m.err = err
	m.state.Store(int32(MutationIdle))
	close(m.done)
}
