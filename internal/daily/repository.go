package daily

import (
	"context"
	"errors"
)

var (
	ErrOfferNotFound = errors.New("daily offer not found")
	ErrSoldOut       = errors.New("daily offer sold out")
)

// Repository defines all database operations for daily offers.
type Repository interface {
	GetOffer(ctx context.Context, id string) (*Offer, error)
	GetOfferByDate(ctx context.Context, date string) (*Offer, error)
	ListOffers(ctx context.Context, from, to string) ([]*Offer, error)

	CreateOffer(ctx context.Context, offer *Offer) error

	// ConsumePortions atomically checks availability and decrements
	// remaining portions; ErrSoldOut when fewer than n remain. This is
	// the authoritative availability check. Clients only read
	// RemainingPortions.
	ConsumePortions(ctx context.Context, offerID string, n int) error

	// ReleasePortions gives portions back when an order fails after
	// they were consumed, capped at MaxPortions.
	ReleasePortions(ctx context.Context, offerID string, n int) error
}
