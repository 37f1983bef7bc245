// README: In-memory Repository implementation for tests and local runs.
package trips

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is an in-memory Repository. It is safe for concurrent use.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]SavedTrip
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]SavedTrip)}
}

func (r *MemoryRepository) Insert(ctx context.Context, t *SavedTrip) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[t.ID] = *t
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]SavedTrip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []SavedTrip
	for _, t := range r.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, userID, id string) (*SavedTrip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
