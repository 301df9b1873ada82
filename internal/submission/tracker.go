// Package submission tracks the lifecycle of one user-initiated request:
// idle, pending, then succeeded or failed. Starting a new request cancels and
// supersedes the one in flight, so a late result never overwrites a newer one.
package submission

import (
	"context"
	"sync"
)

// State is the lifecycle state of a tracked request.
type State string

// Request states.
const (
	StateIdle      State = "idle"
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Token identifies one request started with Begin.
type Token uint64

// Snapshot is a point-in-time view of a Tracker.
type Snapshot[T any] struct {
	State State
	Value T
	Err   error
}

// Pending reports whether a request is in flight.
func (s Snapshot[T]) Pending() bool {
	return s.State == StatePending
}

// Tracker is safe for concurrent use.
type Tracker[T any] struct {
	mu      sync.Mutex
	current Token
	cancel  context.CancelFunc
	snap    Snapshot[T]
}

// NewTracker returns an idle tracker.
func NewTracker[T any]() *Tracker[T] {
	return &Tracker[T]{snap: Snapshot[T]{State: StateIdle}}
}

// Begin marks a new request pending and returns its token. Any request still
// in flight is cancelled and its eventual Finish is ignored.
func (t *Tracker[T]) Begin() Token {
	token, _ := t.begin(nil)
	return token
}

func (t *Tracker[T]) begin(cancel context.CancelFunc) (Token, context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.current++
	t.cancel = cancel
	var zero T
	t.snap = Snapshot[T]{State: StatePending, Value: zero}
	return t.current, cancel
}

// Finish records the outcome of the request identified by token.
// It returns false, leaving the state untouched, when token was superseded.
func (t *Tracker[T]) Finish(token Token, value T, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token != t.current || t.snap.State != StatePending {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if err != nil {
		var zero T
		t.snap = Snapshot[T]{State: StateFailed, Value: zero, Err: err}
		return true
	}
	t.snap = Snapshot[T]{State: StateSucceeded, Value: value}
	return true
}

// Run executes fn as a tracked request. The context passed to fn is cancelled
// when a later request begins. The returned bool is false when the result was
// discarded because the request was superseded.
func (t *Tracker[T]) Run(ctx context.Context, fn func(context.Context) (T, error)) (T, bool, error) {
	runCtx, cancel := context.WithCancel(ctx)
	token, _ := t.begin(cancel)
	defer cancel()

	value, err := fn(runCtx)
	applied := t.Finish(token, value, err)
	return value, applied, err
}

// Reset cancels any request in flight and returns to idle.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.current++
	t.snap = Snapshot[T]{State: StateIdle}
}

// Snapshot returns the current state.
func (t *Tracker[T]) Snapshot() Snapshot[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}
