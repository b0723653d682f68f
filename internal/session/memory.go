package session

import (
	"context"
	"sync"
	"time"
)

// memoryStore keeps sessions in a map for the process lifetime. Eviction,
// if desired, is an external concern.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (s *memoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, exists := s.sessions[id]
	s.mu.RUnlock()
	if exists {
		return sess, nil
	}

	sess = newSession(id)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *memoryStore) Save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = time.Now()
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	s.sessions = nil
	s.mu.Unlock()
	return nil
}
