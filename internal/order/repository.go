package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

// Filter narrows admin order listings. Zero values mean "no bound".
type Filter struct {
	From   string // YYYY-MM-DD inclusive
	To     string // YYYY-MM-DD inclusive
	Status string
}

// Repository defines all database operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, f Filter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
