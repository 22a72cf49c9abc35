package favorites

import "context"

// Repository persists one session's favorites as a single keyed JSON
// document, newest first.
type Repository interface {
	List(ctx context.Context, sessionID string) ([]Favorite, error)
	Replace(ctx context.Context, sessionID string, favorites []Favorite) error
}
