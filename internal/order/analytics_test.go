package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/order"
)

func seedOrder(repo *order.InMemoryRepository, id, date, status, payment string, total int) {
	day, _ := time.Parse("2006-01-02", date)
	repo.Orders[id] = &order.Order{
		ID:            id,
		CustomerName:  "Teszt Elek",
		Phone:         "+36301112222",
		PaymentMethod: payment,
		Status:        status,
		Total:         total,
		CreatedAt:     day.Add(12 * time.Hour),
	}
}

func TestSummarize(t *testing.T) {
	repo := order.NewInMemoryRepository()
	svc := order.NewService(repo, fakeValidator{}, nil, nil, nil, nil)

	seedOrder(repo, "o1", "2026-09-01", order.StatusCompleted, order.PaymentCash, 3000)
	seedOrder(repo, "o2", "2026-09-01", order.StatusCompleted, order.PaymentCard, 1800)
	seedOrder(repo, "o3", "2026-09-02", order.StatusAccepted, order.PaymentCash, 2400)
	seedOrder(repo, "o4", "2026-09-02", order.StatusRejected, order.PaymentCard, 9999)
	seedOrder(repo, "o5", "2026-08-15", order.StatusCompleted, order.PaymentCash, 5000) // outside range

	sum, err := svc.Summarize(context.Background(), "2026-09-01", "2026-09-30")
	if err != nil {
		t.Fatal(err)
	}

	if sum.TotalOrders != 4 {
		t.Errorf("total orders = %d, want 4 (rejected counted, out-of-range not)", sum.TotalOrders)
	}
	if sum.RejectedOrders != 1 {
		t.Errorf("rejected = %d, want 1", sum.RejectedOrders)
	}
	if sum.TotalRevenue != 3000+1800+2400 {
		t.Errorf("revenue = %d, rejected orders must not contribute", sum.TotalRevenue)
	}

	if len(sum.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(sum.Days))
	}
	if sum.Days[0].Date != "2026-09-01" || sum.Days[1].Date != "2026-09-02" {
		t.Errorf("days not sorted ascending: %+v", sum.Days)
	}
	if sum.Days[0].Orders != 2 || sum.Days[0].Revenue != 4800 {
		t.Errorf("day 1 = %+v, want 2 orders / 4800", sum.Days[0])
	}

	cash := sum.ByPayment[order.PaymentCash]
	if cash.Orders != 2 || cash.Revenue != 5400 {
		t.Errorf("cash bucket = %+v, want 2 orders / 5400", cash)
	}
	card := sum.ByPayment[order.PaymentCard]
	if card.Orders != 1 || card.Revenue != 1800 {
		t.Errorf("card bucket = %+v, rejected order must be excluded", card)
	}
}

func TestSummarizeEmptyRange(t *testing.T) {
	repo := order.NewInMemoryRepository()
	svc := order.NewService(repo, fakeValidator{}, nil, nil, nil, nil)

	sum, err := svc.Summarize(context.Background(), "2026-09-01", "2026-09-30")
	if err != nil {
		t.Fatal(err)
	}
	if sum.TotalOrders != 0 || sum.TotalRevenue != 0 || len(sum.Days) != 0 {
		t.Errorf("summary = %+v, want zeros", sum)
	}
}
