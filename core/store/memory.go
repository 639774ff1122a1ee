package store

import (
	"context"
	"sync"

	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
)

// MemoryStore is an in-process Gateway for tests and embedded use.
type MemoryStore struct {
	mu      sync.RWMutex
	order   map[string][]roles.Role
	results map[string]map[roles.Role]review.AgentResult
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		order:   make(map[string][]roles.Role),
		results: make(map[string]map[roles.Role]review.AgentResult),
	}
}

// Save records one result, replacing any earlier result for the same role.
func (s *MemoryStore) Save(ctx context.Context, subjectID string, res review.AgentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byRole, ok := s.results[subjectID]
	if !ok {
		byRole = make(map[roles.Role]review.AgentResult)
		s.results[subjectID] = byRole
	}
	if _, exists := byRole[res.Role]; !exists {
		s.order[subjectID] = append(s.order[subjectID], res.Role)
	}
	byRole[res.Role] = res
	return nil
}

// LoadAll returns a subject's results in insertion order.
func (s *MemoryStore) LoadAll(ctx context.Context, subjectID string) ([]review.AgentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.order[subjectID]
	out := make([]review.AgentResult, 0, len(order))
	for _, role := range order {
		out = append(out, s.results[subjectID][role])
	}
	return out, nil
}

// DeleteAll removes a subject's results.
func (s *MemoryStore) DeleteAll(ctx context.Context, subjectID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.order[subjectID]))
	delete(s.order, subjectID)
	delete(s.results, subjectID)
	return count, nil
}
