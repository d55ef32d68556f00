package auth

import (
	"sync"

	"github.com/google/uuid"

	"ideaforge/internal/core"
)

// Sessions is an in-memory registry of signed-in users. Observers are
// notified on every sign-in and sign-out with the new user (nil on sign-out),
// mirroring the identity-change subscription the UI layer binds to.
type Sessions struct {
	mu        sync.RWMutex
	active    map[string]*core.User // session token -> user
	observers []func(*core.User)
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{active: make(map[string]*core.User)}
}

// Subscribe registers an observer for identity changes. The observer is
// immediately invoked with nil to establish the signed-out baseline.
func (s *Sessions) Subscribe(fn func(*core.User)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
	fn(nil)
}

// SignIn records a verified user and returns their session token.
func (s *Sessions) SignIn(user *core.User) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.active[token] = user
	observers := append([]func(*core.User){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(user)
	}
	return token
}

// SignOut ends the session for a token. Unknown tokens are ignored.
func (s *Sessions) SignOut(token string) {
	s.mu.Lock()
	_, existed := s.active[token]
	delete(s.active, token)
	observers := append([]func(*core.User){}, s.observers...)
	s.mu.Unlock()

	if existed {
		for _, fn := range observers {
			fn(nil)
		}
	}
}

// User returns the signed-in user for a session token, or nil.
func (s *Sessions) User(token string) *core.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active[token]
}
