package cart

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	carts map[string][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Line)}
}

func (r *InMemoryRepository) Load(_ context.Context, sessionID string) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.carts[sessionID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) Save(_ context.Context, sessionID string, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make([]Line, len(lines))
	copy(saved, lines)
	r.carts[sessionID] = saved
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
