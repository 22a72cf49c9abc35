package favorites

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	favs map[string][]Favorite
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{favs: make(map[string][]Favorite)}
}

func (r *InMemoryRepository) List(_ context.Context, sessionID string) ([]Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Favorite, len(r.favs[sessionID]))
	copy(out, r.favs[sessionID])
	return out, nil
}

func (r *InMemoryRepository) Replace(_ context.Context, sessionID string, favorites []Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make([]Favorite, len(favorites))
	copy(saved, favorites)
	r.favs[sessionID] = saved
	return nil
}
