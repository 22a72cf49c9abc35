package announce

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]*Announcement
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]*Announcement)}
}

func (r *InMemoryRepository) ListActive(_ context.Context) ([]*Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var out []*Announcement
	for _, a := range r.items {
		if a.ActiveAt(now) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Announcement
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *InMemoryRepository) Create(_ context.Context, a *Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
