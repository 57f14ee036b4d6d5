package session

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound reports the absence of a cached session. First runs,
// expired entries and invalidated entries all surface it; callers
// treat it as "log in again", not as a failure.
var ErrNotFound = errors.New("session not found")

// Store persists one session token per username. Load on a missing or
// expired entry returns ErrNotFound. Save replaces any previous entry
// for that username atomically. Mutation is scoped to the given
// username: entries for other usernames are never touched.
type Store interface {
	Load(username string) (*Token, error)
	Save(username string, token *Token) error
	Invalidate(username string) error
}

// MemoryStore keeps tokens in process memory. Used by tests and by
// cache-bypassing runs; nothing touches disk.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]*Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]*Token)}
}

func (s *MemoryStore) Load(username string) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.tokens[username]
	if !ok {
		return nil, ErrNotFound
	}
	if !tok.Valid(time.Now()) {
		delete(s.tokens, username)
		return nil, ErrNotFound
	}
	return tok.clone(), nil
}

func (s *MemoryStore) Save(username string, token *Token) error {
	if token == nil {
		return errors.New("nil token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[username] = token.clone()
	return nil
}

func (s *MemoryStore) Invalidate(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, username)
	return nil
}
