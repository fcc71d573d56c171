package sessions

import "sync"

// A MemoryStore keeps the session token in memory only. It backs tests and
// the --no-persist mode, where a session should not outlive the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadSession returns the stored token, or ErrNoSessionFound.
func (s *MemoryStore) LoadSession() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoSessionFound
	}
	return s.token, nil
}

// SaveSession stores the token.
func (s *MemoryStore) SaveSession(rawJWT string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = rawJWT
	s.set = true
	return nil
}

// ClearSession removes the token.
func (s *MemoryStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
