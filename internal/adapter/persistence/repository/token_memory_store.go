package repository

import (
	"context"
	"sync"

	"tradeportal/internal/usecase/interfaces"
)

// MemoryTokenStore is the in-memory ITokenStore used by test harnesses. It
// is injected explicitly where needed, never reached through package-global
// state.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

var _ interfaces.ITokenStore = (*MemoryTokenStore)(nil)

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: map[string]string{}}
}

func (s *MemoryTokenStore) Create(_ context.Context, token, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = subject
	return nil
}

func (s *MemoryTokenStore) Check(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *MemoryTokenStore) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject := s.tokens[token]
	delete(s.tokens, token)
	return subject, nil
}
