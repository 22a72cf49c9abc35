package cart

import "context"

// Repository persists one JSON-serialized cart per session key,
// mirroring the keyed durable storage carts originally lived in.
// Carts are device-local pre-order state: no cross-session sync.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}
