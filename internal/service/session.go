package service

import (
	"sync"
)

// Session holds the one username, if any, that is currently authenticated.
// It refers to the account by name only; account data stays in storage.
type Session struct {
	mu       sync.RWMutex
	username string
	active   bool
}

func NewSession() *Session {
	return &Session{}
}

// Active returns the logged-in username and whether a session exists.
func (s *Session) Active() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.active
}

func (s *Session) activate(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	s.active = true
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = ""
	s.active = false
}
