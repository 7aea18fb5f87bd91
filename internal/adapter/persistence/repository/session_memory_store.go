package repository

import (
	"context"
	"sync"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"
)

// SessionMemoryStore keeps wizard sessions in process memory. Sessions live
// as long as the process does, which matches the single-node default setup.
type SessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.WizardSession
}

var _ interfaces.ISessionStore = (*SessionMemoryStore)(nil)

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{sessions: make(map[string]entities.WizardSession)}
}

func (s *SessionMemoryStore) Put(ctx context.Context, session entities.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *SessionMemoryStore) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

func (s *SessionMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
