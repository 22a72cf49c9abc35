package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrSidesIncomplete   = errors.New("side selection incomplete")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingContact    = errors.New("name and phone are required")
	ErrBadPaymentMethod  = errors.New("payment method must be cash or card")
	ErrPortionsExhausted = errors.New("daily offer portions exhausted")
)

// CartValidator mirrors the client-side checkout gate on the server:
// an order that bypasses the UI check is still rejected here.
type CartValidator interface {
	ValidateCart(ctx context.Context, lines []cart.Line) (sides.ValidationResult, error)
}

// PortionSource is the authoritative daily-portion ledger.
type PortionSource interface {
	ConsumePortions(ctx context.Context, offerID string, n int) error
	ReleasePortions(ctx context.Context, offerID string, n int) error
}

// Notifier feeds the staff dashboard. Implementations must not block.
type Notifier interface {
	OrderCreated(orderID string)
	OrderUpdated(orderID string)
}

// Mailer sends the customer confirmation. Optional.
type Mailer interface {
	SendOrderConfirmation(to string, o *Order) error
}

type Service struct {
	repo      Repository
	validator CartValidator
	portions  PortionSource
	carts     *cart.Sessions
	notifier  Notifier
	mailer    Mailer
}

func NewService(
	repo Repository,
	validator CartValidator,
	portions PortionSource,
	carts *cart.Sessions,
	notifier Notifier,
	mailer Mailer,
) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		portions:  portions,
		carts:     carts,
		notifier:  notifier,
		mailer:    mailer,
	}
}

type SubmitRequest struct {
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PickupTime    string `json:"pickup_time"`
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note"`
}

// Submit turns a session cart into a persisted order, all or nothing.
//
// The side-dish requirement is re-validated HERE, against current
// catalog configuration, not just in the UI. Daily portions are
// consumed with an atomic check-and-decrement per offer; if any offer
// is exhausted, or the order row itself fails to persist, every
// decrement already made is released and no order exists. The
// validation result accompanies ErrSidesIncomplete so the caller can
// show the per-line messages.
func (s *Service) Submit(
	ctx context.Context,
	sessionID string,
	req SubmitRequest,
	store *cart.Store,
) (*Order, sides.ValidationResult, error) {

	if req.CustomerName == "" || req.Phone == "" {
		return nil, sides.ValidationResult{}, ErrMissingContact
	}
	if req.PaymentMethod != PaymentCash && req.PaymentMethod != PaymentCard {
		return nil, sides.ValidationResult{}, ErrBadPaymentMethod
	}

	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, sides.ValidationResult{}, ErrEmptyCart
	}

	result, err := s.validator.ValidateCart(ctx, snap.Items)
	if err != nil {
		return nil, sides.ValidationResult{}, err
	}
	if !result.Valid {
		return nil, result, ErrSidesIncomplete
	}

	// Portions per daily offer: every offer-linked line consumes its
	// quantity, packages and à-la-carte picks alike.
	needs := make(map[string]int)
	for _, line := range snap.Items {
		if line.DailyID != "" {
			needs[line.DailyID] += line.Quantity
		}
	}

	var consumed []struct {
		offerID string
		n       int
	}
	release := func() {
		for _, c := range consumed {
			if err := s.portions.ReleasePortions(ctx, c.offerID, c.n); err != nil {
				logrus.WithError(err).WithField("offer", c.offerID).
					Error("portion release failed")
			}
		}
	}

	for offerID, n := range needs {
		if err := s.portions.ConsumePortions(ctx, offerID, n); err != nil {
			release()
			return nil, sides.ValidationResult{}, fmt.Errorf("%w: %v", ErrPortionsExhausted, err)
		}
		consumed = append(consumed, struct {
			offerID string
			n       int
		}{offerID, n})
	}

	o := &Order{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Email:         req.Email,
		PickupTime:    req.PickupTime,
		PaymentMethod: req.PaymentMethod,
		Status:        StatusNew,
		Note:          req.Note,
		Total:         snap.Total,
	}
	for _, line := range snap.Items {
		unit := line.UnitPrice
		for _, m := range line.Modifiers {
			unit += m.PriceDelta
		}
		o.Lines = append(o.Lines, Line{
			ID:        uuid.New().String(),
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Sides:     line.Sides,
			Modifiers: line.Modifiers,
			DailyType: line.DailyType,
			DailyID:   line.DailyID,
			LineTotal: unit * line.Quantity,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		release()
		return nil, sides.ValidationResult{}, err
	}

	s.carts.Drop(ctx, sessionID)

	if s.notifier != nil {
		s.notifier.OrderCreated(o.ID)
	}
	if s.mailer != nil && o.Email != "" {
		go func(o *Order) {
			if err := s.mailer.SendOrderConfirmation(o.Email, o); err != nil {
				logrus.WithError(err).WithField("order", o.ID).
					Warn("confirmation mail failed")
			}
		}(o)
	}

	logrus.WithFields(logrus.Fields{
		"order": o.ID,
		"total": o.Total,
		"lines": len(o.Lines),
	}).Info("order submitted")

	return o, result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Order, error) {
	return s.repo.List(ctx, f)
}

// UpdateStatus moves an order along the staff pipeline.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status

	if s.notifier != nil {
		s.notifier.OrderUpdated(id)
	}
	return o, nil
}
