package favorites

import (
	"time"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

// MaxFavorites bounds how many saved orders one session keeps.
const MaxFavorites = 5

// Favorite is a snapshot of a past cart composition for one-click
// reordering. Items are re-validated against the current catalog at
// reorder time; a dish may have been deactivated since saving.
type Favorite struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Items      []cart.Line `json:"items"`
	TotalPrice int         `json:"total_price"`
	SavedAt    time.Time   `json:"saved_at"`
}
