// Package auth holds the client session: who is signed in and with which role.
//
// Credentials are never verified. The session is persisted to a Storage under
// StorageKey and rehydrated when a Holder is created.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-board/internal/types"
)

// StorageKey is the key the serialized session is kept under.
const StorageKey = "user"

// Holder owns the single active session of a client.
//
// Mutations commit under one lock in completion order, so when a login or
// signup is still waiting out its delay and a logout commits first, the later
// login wins.
type Holder struct {
	mu      sync.RWMutex
	user    *types.User
	storage Storage
	delay   time.Duration
	newID   func() string
}

// Option configures a Holder.
type Option func(*Holder)

// WithDelay sets the simulated latency of Login and Signup.
func WithDelay(d time.Duration) Option {
	return func(h *Holder) { h.delay = d }
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(fn func() string) Option {
	return func(h *Holder) { h.newID = fn }
}

// NewHolder creates a Holder and rehydrates the persisted session, if any.
func NewHolder(storage Storage, opts ...Option) *Holder {
	h := &Holder{
		storage: storage,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.rehydrate()
	return h
}

func (h *Holder) rehydrate() {
	raw, ok, err := h.storage.Get(StorageKey)
	if err != nil {
		log.Printf("[auth] Failed to read persisted session: %v", err)
		return
	}
	if !ok {
		return
	}

	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("[auth] Discarding unreadable persisted session: %v", err)
		if err := h.storage.Remove(StorageKey); err != nil {
			log.Printf("[auth] Failed to remove persisted session: %v", err)
		}
		return
	}
	h.user = &user
}

// Current returns the active session.
func (h *Holder) Current() (types.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return types.User{}, false
	}
	return *h.user, true
}

// Login starts a student session for email. The password is ignored.
func (h *Holder) Login(ctx context.Context, email, _ string) (types.User, error) {
	return h.start(ctx, email, types.RoleStudent)
}

// Signup starts a session for email with the requested role. The password is ignored.
func (h *Holder) Signup(ctx context.Context, email, _ string, role types.Role) (types.User, error) {
	if _, err := types.ParseRole(string(role)); err != nil {
		return types.User{}, err
	}
	return h.start(ctx, email, role)
}

func (h *Holder) start(ctx context.Context, email string, role types.Role) (types.User, error) {
	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return types.User{}, ctx.Err()
		}
	}

	user := types.User{ID: h.newID(), Email: email, Role: role}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.commit(&user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// Logout ends the session and removes the persisted copy.
func (h *Holder) Logout() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.commit(nil)
}

// SetRole replaces the role of the active session. Without a session it does
// nothing and reports ok == false.
func (h *Holder) SetRole(role types.Role) (user types.User, ok bool, err error) {
	if _, err := types.ParseRole(string(role)); err != nil {
		return types.User{}, false, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.user == nil {
		return types.User{}, false, nil
	}

	updated := *h.user
	updated.Role = role
	if err := h.commit(&updated); err != nil {
		return types.User{}, false, err
	}
	return updated, true, nil
}

// commit persists user (or removes it when nil) and then swaps the in-memory
// session. Callers must hold h.mu.
func (h *Holder) commit(user *types.User) error {
	if user == nil {
		if err := h.storage.Remove(StorageKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		h.user = nil
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := h.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	h.user = user
	return nil
}
