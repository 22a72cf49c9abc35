package daily

import "context"

type InMemoryRepository struct {
	Offers map[string]*Offer
	byDate map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Offers: make(map[string]*Offer),
		byDate: make(map[string]string),
	}
}

func (r *InMemoryRepository) GetOffer(_ context.Context, id string) (*Offer, error) {
	o, ok := r.Offers[id]
	if !ok {
		return nil, ErrOfferNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) GetOfferByDate(ctx context.Context, date string) (*Offer, error) {
	id, ok := r.byDate[date]
	if !ok {
		return nil, ErrOfferNotFound
	}
	return r.GetOffer(ctx, id)
}

func (r *InMemoryRepository) ListOffers(_ context.Context, from, to string) ([]*Offer, error) {
	var offers []*Offer
	for _, o := range r.Offers {
		if o.Date >= from && o.Date <= to {
			offers = append(offers, o)
		}
	}
	return offers, nil
}

func (r *InMemoryRepository) CreateOffer(_ context.Context, offer *Offer) error {
	r.Offers[offer.ID] = offer
	r.byDate[offer.Date] = offer.ID
	return nil
}

func (r *InMemoryRepository) ConsumePortions(ctx context.Context, offerID string, n int) error {
	o, err := r.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if o.RemainingPortions < n {
		return ErrSoldOut
	}
	o.RemainingPortions -= n
	return nil
}

func (r *InMemoryRepository) ReleasePortions(ctx context.Context, offerID string, n int) error {
	o, err := r.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	o.RemainingPortions += n
	if o.RemainingPortions > o.MaxPortions {
		o.RemainingPortions = o.MaxPortions
	}
	return nil
}
