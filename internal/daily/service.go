package daily

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

// SideCategories is the one catalog fact this package needs.
type SideCategories interface {
	SideCategoryIDs(ctx context.Context) ([]string, error)
}

type Service struct {
	repo Repository
	cats SideCategories
}

func NewService(repo Repository, cats SideCategories) *Service {
	return &Service{repo: repo, cats: cats}
}

// --------------------------------------------------
// Browsing
// --------------------------------------------------

func (s *Service) Today(ctx context.Context) (*Offer, error) {
	return s.repo.GetOfferByDate(ctx, time.Now().Format("2006-01-02"))
}

func (s *Service) GetOffer(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetOffer(ctx, id)
}

func (s *Service) ListOffers(ctx context.Context, from, to string) ([]*Offer, error) {
	return s.repo.ListOffers(ctx, from, to)
}

// OfferSideItems implements sides.DailySource: the offer's standalone
// (non-combo) items that live in a side-dish category.
func (s *Service) OfferSideItems(ctx context.Context, offerID string) ([]sides.Option, error) {
	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, ErrOfferNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sideCats, err := s.cats.SideCategoryIDs(ctx)
	if err != nil {
		return nil, err
	}
	isSideCat := make(map[string]bool, len(sideCats))
	for _, id := range sideCats {
		isSideCat[id] = true
	}

	var opts []sides.Option
	for _, it := range offer.Items {
		if !it.IsMenuPart && isSideCat[it.CategoryID] {
			opts = append(opts, sides.Option{ID: it.MenuItemID, Name: it.Name})
		}
	}
	return opts, nil
}

// --------------------------------------------------
// Composition
// --------------------------------------------------

// Candidates picks the item set a selection is drawn from: the fixed
// combo parts for the "menü", the whole day's list for the offer.
func Candidates(offer *Offer, dailyType string) []*Item {
	if dailyType == TypeMenu {
		var parts []*Item
		for _, it := range offer.Items {
			if it.IsMenuPart {
				parts = append(parts, it)
			}
		}
		return parts
	}
	return offer.Items
}

// Preview prices a selection without touching any cart.
func (s *Service) Preview(
	ctx context.Context,
	offerID, dailyType string,
	quantities map[string]int,
) (*Offer, Composition, error) {

	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, Composition{}, err
	}
	comp := Compose(Candidates(offer, dailyType), offer.PackagePrice, quantities)
	return offer, comp, nil
}

// AddSelectionToCart composes the selection and appends the resulting
// lines to the session cart in one mutation.
func (s *Service) AddSelectionToCart(
	ctx context.Context,
	offerID, dailyType string,
	quantities map[string]int,
	store *cart.Store,
) (Composition, error) {

	offer, comp, err := s.Preview(ctx, offerID, dailyType, quantities)
	if err != nil {
		return Composition{}, err
	}
	if comp.TotalQuantity == 0 {
		return Composition{}, errors.New("empty selection")
	}

	lines := CartLines(offer, dailyType, Candidates(offer, dailyType), quantities, comp)
	store.AddLines(lines)
	return comp, nil
}

// AddMenuToCart adds one unit of the fixed soup+main combo.
func (s *Service) AddMenuToCart(ctx context.Context, offerID string, store *cart.Store) (string, error) {
	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return "", err
	}

	soup, main := offer.Soup(), offer.Main()
	return store.AddCompleteMenu(cart.CompleteMenu{
		OfferID:           offer.ID,
		Date:              offer.Date,
		Name:              packageName(offer, TypeMenu, nil),
		PackagePrice:      offer.PackagePrice,
		RemainingPortions: offer.RemainingPortions,
		HasSoup:           soup != nil,
		HasMain:           main != nil,
	})
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (s *Service) CreateOffer(ctx context.Context, offer *Offer) error {
	if offer.Date == "" {
		return errors.New("date is required")
	}
	if offer.PackagePrice < 0 || offer.MaxPortions < 0 {
		return errors.New("price and portions must not be negative")
	}
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.RemainingPortions = offer.MaxPortions
	for _, it := range offer.Items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
	}
	return s.repo.CreateOffer(ctx, offer)
}

// ConsumePortions forwards the atomic availability check+decrement.
func (s *Service) ConsumePortions(ctx context.Context, offerID string, n int) error {
	return s.repo.ConsumePortions(ctx, offerID, n)
}

// ReleasePortions compensates a consumed decrement after a failed
// order submission.
func (s *Service) ReleasePortions(ctx context.Context, offerID string, n int) error {
	return s.repo.ReleasePortions(ctx, offerID, n)
}
