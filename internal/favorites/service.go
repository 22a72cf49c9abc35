package favorites

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
)

var ErrEmptyCart = errors.New("nothing to save, cart is empty")

// ItemSource answers "is this dish still orderable" at reorder time.
type ItemSource interface {
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
}

type Service struct {
	repo  Repository
	items ItemSource
}

func NewService(repo Repository, items ItemSource) *Service {
	return &Service{repo: repo, items: items}
}

func (s *Service) List(ctx context.Context, sessionID string) ([]Favorite, error) {
	return s.repo.List(ctx, sessionID)
}

// Save snapshots the current cart as a named favorite. The list is
// newest first and capped at MaxFavorites; the oldest entry falls off
// when a sixth is saved.
func (s *Service) Save(ctx context.Context, sessionID, name string, snap cart.Snapshot) (*Favorite, error) {
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if name == "" {
		name = "Kedvenc rendelés " + time.Now().Format("01-02")
	}

	fav := Favorite{
		ID:         uuid.New().String(),
		Name:       name,
		Items:      snap.Items,
		TotalPrice: snap.Total,
		SavedAt:    time.Now(),
	}

	existing, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := append([]Favorite{fav}, existing...)
	if len(updated) > MaxFavorites {
		updated = updated[:MaxFavorites]
	}

	if err := s.repo.Replace(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *Service) Delete(ctx context.Context, sessionID, favoriteID string) error {
	existing, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return err
	}
	kept := existing[:0]
	for _, f := range existing {
		if f.ID != favoriteID {
			kept = append(kept, f)
		}
	}
	return s.repo.Replace(ctx, sessionID, kept)
}

// ReorderResult reports what survived the availability re-check.
type ReorderResult struct {
	Added       int      `json:"added"`
	Unavailable []string `json:"unavailable,omitempty"` // item names
}

// Reorder re-adds a favorite's items to the cart, re-validating every
// line against the current catalog first. Deactivated or vanished
// items (including stale daily-package lines, whose synthetic ids
// never resolve) are reported by name instead of silently re-added at
// a stale price.
func (s *Service) Reorder(ctx context.Context, sessionID, favoriteID string, store *cart.Store) (*ReorderResult, error) {
	favs, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var fav *Favorite
	for i := range favs {
		if favs[i].ID == favoriteID {
			fav = &favs[i]
			break
		}
	}
	if fav == nil {
		return nil, errors.New("favorite not found")
	}

	result := &ReorderResult{}
	var lines []cart.Line

	for _, line := range fav.Items {
		item, err := s.items.GetItem(ctx, line.ItemID)
		if err != nil || !item.Active {
			result.Unavailable = append(result.Unavailable, line.Name)
			continue
		}

		// Fresh price snapshot: the saved one may be stale.
		lines = append(lines, cart.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Sides:     line.Sides,
			Modifiers: line.Modifiers,
		})
		result.Added++
	}

	if len(lines) > 0 {
		store.AddLines(lines)
	}
	return result, nil
}
