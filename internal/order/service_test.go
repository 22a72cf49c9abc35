package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/daily"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/order"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

type fakeValidator struct {
	result sides.ValidationResult
}

func (f fakeValidator) ValidateCart(_ context.Context, _ []cart.Line) (sides.ValidationResult, error) {
	return f.result, nil
}

type recordingNotifier struct {
	created []string
	updated []string
}

func (n *recordingNotifier) OrderCreated(id string) { n.created = append(n.created, id) }
func (n *recordingNotifier) OrderUpdated(id string) { n.updated = append(n.updated, id) }

type env struct {
	repo     *order.InMemoryRepository
	offers   *daily.InMemoryRepository
	sessions *cart.Sessions
	notifier *recordingNotifier
	svc      *order.Service
}

func newEnv(t *testing.T, valid bool) *env {
	t.Helper()
	e := &env{
		repo:     order.NewInMemoryRepository(),
		offers:   daily.NewInMemoryRepository(),
		sessions: cart.NewSessions(cart.NewInMemoryRepository()),
		notifier: &recordingNotifier{},
	}
	result := sides.ValidationResult{Valid: valid}
	if !valid {
		result.Errors = []string{"Rántott szelet: köretválasztás szükséges (legalább 1)"}
	}
	e.svc = order.NewService(e.repo, fakeValidator{result}, e.offers, e.sessions, e.notifier, nil)
	return e
}

func validRequest() order.SubmitRequest {
	return order.SubmitRequest{
		CustomerName:  "Kiss Anna",
		Phone:         "+36301234567",
		PickupTime:    "12:30",
		PaymentMethod: order.PaymentCash,
	}
}

func TestSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)

	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "gulyas", Name: "Gulyás", UnitPrice: 1200, Quantity: 2})

	o, _, err := e.svc.Submit(ctx, "s1", validRequest(), store)
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != order.StatusNew {
		t.Errorf("status = %q, want NEW", o.Status)
	}
	if o.Total != 2400 {
		t.Errorf("total = %d, want 2400", o.Total)
	}
	if len(o.Lines) != 1 || o.Lines[0].LineTotal != 2400 {
		t.Errorf("lines = %+v", o.Lines)
	}
	if _, ok := e.repo.Orders[o.ID]; !ok {
		t.Error("order not persisted")
	}
	if len(e.notifier.created) != 1 || e.notifier.created[0] != o.ID {
		t.Errorf("notifier.created = %v", e.notifier.created)
	}
	// The cart is consumed by a successful submission.
	if snap := e.sessions.Get(ctx, "s1").Snapshot(); len(snap.Items) != 0 {
		t.Error("cart must be empty after submit")
	}
}

func TestSubmitValidatesContactAndPayment(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "a", Name: "X", UnitPrice: 100, Quantity: 1})

	req := validRequest()
	req.Phone = ""
	if _, _, err := e.svc.Submit(ctx, "s1", req, store); !errors.Is(err, order.ErrMissingContact) {
		t.Errorf("missing phone = %v, want ErrMissingContact", err)
	}

	req = validRequest()
	req.PaymentMethod = "bitcoin"
	if _, _, err := e.svc.Submit(ctx, "s1", req, store); !errors.Is(err, order.ErrBadPaymentMethod) {
		t.Errorf("bad payment = %v, want ErrBadPaymentMethod", err)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	store := e.sessions.Get(ctx, "s1")

	if _, _, err := e.svc.Submit(ctx, "s1", validRequest(), store); !errors.Is(err, order.ErrEmptyCart) {
		t.Errorf("empty cart = %v, want ErrEmptyCart", err)
	}
}

func TestSubmitBlocksOnSideValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "schnitzel", Name: "Rántott szelet", UnitPrice: 1800, Quantity: 1})

	_, result, err := e.svc.Submit(ctx, "s1", validRequest(), store)
	if !errors.Is(err, order.ErrSidesIncomplete) {
		t.Fatalf("err = %v, want ErrSidesIncomplete", err)
	}
	if len(result.Errors) == 0 {
		t.Error("validation result must carry the per-line messages")
	}
	if len(e.repo.Orders) != 0 {
		t.Error("no order may exist after a blocked submission")
	}
}

func TestSubmitConsumesDailyPortions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	e.offers.Offers["o1"] = &daily.Offer{ID: "o1", Date: "2026-09-01", MaxPortions: 10, RemainingPortions: 10}

	store := e.sessions.Get(ctx, "s1")
	store.AddLines([]cart.Line{
		{ItemID: "daily_menu_o1", Name: "Napi menü", UnitPrice: 1800, Quantity: 1, DailyType: "menu", DailyID: "o1"},
		{ItemID: "daily_menu_o1", Name: "Napi menü", UnitPrice: 1800, Quantity: 2, DailyType: "menu", DailyID: "o1"},
	})

	if _, _, err := e.svc.Submit(ctx, "s1", validRequest(), store); err != nil {
		t.Fatal(err)
	}
	if got := e.offers.Offers["o1"].RemainingPortions; got != 7 {
		t.Errorf("remaining = %d, want 7 (3 portions consumed)", got)
	}
}

func TestSubmitExhaustedPortions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	e.offers.Offers["o1"] = &daily.Offer{ID: "o1", Date: "2026-09-01", MaxPortions: 2, RemainingPortions: 1}

	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "daily_menu_o1", Name: "Napi menü", UnitPrice: 1800, Quantity: 2, DailyID: "o1"})

	_, _, err := e.svc.Submit(ctx, "s1", validRequest(), store)
	if !errors.Is(err, order.ErrPortionsExhausted) {
		t.Fatalf("err = %v, want ErrPortionsExhausted", err)
	}
	if len(e.repo.Orders) != 0 {
		t.Error("no order may exist when portions ran out")
	}
	if got := e.offers.Offers["o1"].RemainingPortions; got != 1 {
		t.Errorf("remaining = %d, portions must be untouched", got)
	}
}

func TestSubmitReleasesPortionsWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	e.offers.Offers["o1"] = &daily.Offer{ID: "o1", Date: "2026-09-01", MaxPortions: 10, RemainingPortions: 10}
	e.repo.FailCreate = errors.New("connection reset")

	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "daily_menu_o1", Name: "Napi menü", UnitPrice: 1800, Quantity: 3, DailyID: "o1"})

	_, _, err := e.svc.Submit(ctx, "s1", validRequest(), store)
	if err == nil {
		t.Fatal("want persistence error")
	}
	if got := e.offers.Offers["o1"].RemainingPortions; got != 10 {
		t.Errorf("remaining = %d, consumed portions must be released on failure", got)
	}
	if len(e.repo.Orders) != 0 {
		t.Error("no order may exist after a failed persist")
	}
	// The cart survives a failed submission.
	if snap := store.Snapshot(); len(snap.Items) != 1 {
		t.Error("cart must be untouched after a failed submit")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	store := e.sessions.Get(ctx, "s1")
	store.AddLine(cart.Line{ItemID: "a", Name: "X", UnitPrice: 100, Quantity: 1})
	o, _, err := e.svc.Submit(ctx, "s1", validRequest(), store)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.svc.UpdateStatus(ctx, o.ID, order.StatusReady); !errors.Is(err, order.ErrInvalidTransition) {
		t.Errorf("NEW->READY = %v, want ErrInvalidTransition", err)
	}

	for _, status := range []string{order.StatusAccepted, order.StatusReady, order.StatusCompleted} {
		updated, err := e.svc.UpdateStatus(ctx, o.ID, status)
		if err != nil {
			t.Fatalf("-> %s: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}

	if _, err := e.svc.UpdateStatus(ctx, o.ID, order.StatusRejected); !errors.Is(err, order.ErrInvalidTransition) {
		t.Errorf("COMPLETED->REJECTED = %v, want ErrInvalidTransition", err)
	}
	if len(e.notifier.updated) != 3 {
		t.Errorf("notifier.updated = %v, want one event per transition", e.notifier.updated)
	}
}
