package order

import (
	"context"
	"sort"
)

// DayBucket is one day's order count and revenue.
type DayBucket struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue int    `json:"revenue"`
}

type PaymentBucket struct {
	Orders  int `json:"orders"`
	Revenue int `json:"revenue"`
}

// Summary is the invoice/analytics rollup the back office renders:
// totals grouped by day and by payment method over a date range.
// Rejected orders are counted but excluded from revenue.
type Summary struct {
	From           string                   `json:"from"`
	To             string                   `json:"to"`
	TotalOrders    int                      `json:"total_orders"`
	RejectedOrders int                      `json:"rejected_orders"`
	TotalRevenue   int                      `json:"total_revenue"`
	Days           []DayBucket              `json:"days"`
	ByPayment      map[string]PaymentBucket `json:"by_payment"`
}

// Summarize aggregates in the service rather than SQL so the grouping
// matches the back office's rendering exactly and stays testable with
// the in-memory repository.
func (s *Service) Summarize(ctx context.Context, from, to string) (*Summary, error) {
	orders, err := s.repo.List(ctx, Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		From:      from,
		To:        to,
		ByPayment: make(map[string]PaymentBucket),
	}
	byDay := make(map[string]*DayBucket)

	for _, o := range orders {
		sum.TotalOrders++
		if o.Status == StatusRejected {
			sum.RejectedOrders++
			continue
		}
		sum.TotalRevenue += o.Total

		date := o.CreatedAt.Format("2006-01-02")
		day, ok := byDay[date]
		if !ok {
			day = &DayBucket{Date: date}
			byDay[date] = day
		}
		day.Orders++
		day.Revenue += o.Total

		pb := sum.ByPayment[o.PaymentMethod]
		pb.Orders++
		pb.Revenue += o.Total
		sum.ByPayment[o.PaymentMethod] = pb
	}

	for _, day := range byDay {
		sum.Days = append(sum.Days, *day)
	}
	sort.Slice(sum.Days, func(i, j int) bool {
		return sum.Days[i].Date < sum.Days[j].Date
	})

	return sum, nil
}
