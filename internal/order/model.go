package order

import (
	"time"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

// Order statuses. NEW orders alert the dashboard; staff move them
// forward (or reject them) from there.
const (
	StatusNew       = "NEW"
	StatusAccepted  = "ACCEPTED"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusRejected  = "REJECTED"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

type Order struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"-"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	PickupTime    string    `json:"pickup_time"` // HH:MM
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	Lines         []Line    `json:"lines"`
	Total         int       `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

// Line is a priced order row, copied from the cart at submission so
// the invoice never changes after the fact.
type Line struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice int             `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Sides     []cart.SideRef  `json:"sides,omitempty"`
	Modifiers []cart.Modifier `json:"modifiers,omitempty"`
	DailyType string          `json:"daily_type,omitempty"`
	DailyID   string          `json:"daily_id,omitempty"`
	LineTotal int             `json:"line_total"`
}

// validTransitions: staff can only move an order along the pipeline
// or reject it while it is still live.
var validTransitions = map[string][]string{
	StatusNew:      {StatusAccepted, StatusRejected},
	StatusAccepted: {StatusReady, StatusRejected},
	StatusReady:    {StatusCompleted},
}

func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
