package sides

import (
	"context"
	"errors"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
)

// Source tags where a side policy came from, so callers switch on the
// variant instead of guessing from which fields happen to be set.
type Source int

const (
	// SourceNone means the item has no side step at all; the caller
	// must skip side picking entirely, not render an empty picker.
	SourceNone Source = iota

	// SourceConfigured: the main item has explicit SideConfiguration
	// rows; min/max/required come from them.
	SourceConfigured

	// SourceDailyFallback: no configuration, but the day's offer has
	// à-la-carte side-category items to suggest. Soft suggestion:
	// 0..1, never required.
	SourceDailyFallback

	// SourceGeneralFallback: any active side-category item. 0..1,
	// never required.
	SourceGeneralFallback
)

// Option is one pickable side dish. Sides carry no price delta.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Policy struct {
	Source     Source   `json:"-"`
	Candidates []Option `json:"candidates"`
	Defaults   []string `json:"defaults,omitempty"` // pre-selected ids
	MinSelect  int      `json:"min_select"`
	MaxSelect  int      `json:"max_select"`
	Required   bool     `json:"required"`
}

// HasStep reports whether a side-picking step should be shown.
func (p Policy) HasStep() bool {
	return p.Source != SourceNone
}

// CatalogSource is the slice of the catalog the resolver needs.
// *catalog.Service satisfies the policy part; the repository the rest.
type CatalogSource interface {
	GetSidePolicy(ctx context.Context, mainItemID string) (*catalog.SidePolicy, error)
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
	ActiveSideItems(ctx context.Context) ([]*catalog.MenuItem, error)
}

// DailySource exposes a daily offer's standalone side-category items.
type DailySource interface {
	OfferSideItems(ctx context.Context, offerID string) ([]Option, error)
}

type Resolver struct {
	catalog CatalogSource
	daily   DailySource
}

func NewResolver(catalog CatalogSource, daily DailySource) *Resolver {
	return &Resolver{catalog: catalog, daily: daily}
}

// Resolve walks the three-tier fallback, first match wins:
// item-specific configuration, then the active daily offer's side
// items, then the general side categories. An empty result at every
// tier yields SourceNone.
func (r *Resolver) Resolve(ctx context.Context, mainItemID, dailyOfferID string) (Policy, error) {

	// Tier 1: explicit configuration on the main item.
	cfg, err := r.catalog.GetSidePolicy(ctx, mainItemID)
	if err != nil {
		return Policy{}, err
	}
	if cfg != nil && len(cfg.SideIDs) > 0 {
		policy := Policy{
			Source:    SourceConfigured,
			MinSelect: cfg.MinSelect,
			MaxSelect: cfg.MaxSelect,
			Required:  cfg.IsRequired,
			Defaults:  cfg.DefaultIDs,
		}
		for _, sideID := range cfg.SideIDs {
			item, err := r.catalog.GetItem(ctx, sideID)
			if err != nil {
				// Only a genuinely missing side is skippable. Anything
				// else must surface: swallowing it would soften a
				// required policy into a fallback suggestion.
				if errors.Is(err, catalog.ErrItemNotFound) {
					continue
				}
				return Policy{}, err
			}
			if !item.Active {
				continue
			}
			policy.Candidates = append(policy.Candidates, Option{ID: item.ID, Name: item.Name})
		}
		if len(policy.Candidates) > 0 {
			return policy, nil
		}
	}

	// Tier 2: the day's à-la-carte sides, as a soft suggestion.
	if dailyOfferID != "" && r.daily != nil {
		opts, err := r.daily.OfferSideItems(ctx, dailyOfferID)
		if err != nil {
			return Policy{}, err
		}
		if len(opts) > 0 {
			return Policy{
				Source:     SourceDailyFallback,
				Candidates: opts,
				MinSelect:  0,
				MaxSelect:  1,
			}, nil
		}
	}

	// Tier 3: anything active in the side categories.
	items, err := r.catalog.ActiveSideItems(ctx)
	if err != nil {
		return Policy{}, err
	}
	if len(items) > 0 {
		policy := Policy{
			Source:    SourceGeneralFallback,
			MinSelect: 0,
			MaxSelect: 1,
		}
		for _, item := range items {
			policy.Candidates = append(policy.Candidates, Option{ID: item.ID, Name: item.Name})
		}
		return policy, nil
	}

	return Policy{Source: SourceNone}, nil
}
