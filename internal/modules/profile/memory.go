// README: In-memory Repository implementation for tests.
package profile

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository. It is safe for concurrent use.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]Profile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]Profile)}
}

func (r *MemoryRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, p *Profile) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.UserID] = *p
	return nil
}
