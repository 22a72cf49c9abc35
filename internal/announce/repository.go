package announce

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("announcement not found")

type Repository interface {
	ListActive(ctx context.Context) ([]*Announcement, error)
	ListAll(ctx context.Context) ([]*Announcement, error)
	Create(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id string) error
}
