package order

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	Orders map[string]*Order

	// FailCreate makes Create fail once, for atomicity tests.
	FailCreate error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{Orders: make(map[string]*Order)}
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		err := r.FailCreate
		r.FailCreate = nil
		return err
	}
	r.Orders[o.ID] = o
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.Orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) List(_ context.Context, f Filter) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var orders []*Order
	for _, o := range r.Orders {
		date := o.CreatedAt.Format("2006-01-02")
		if f.From != "" && date < f.From {
			continue
		}
		if f.To != "" && date > f.To {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *InMemoryRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.Orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	return nil
}
