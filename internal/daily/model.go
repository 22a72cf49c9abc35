package daily

import "time"

// Roles a daily offer item can play inside the fixed-price "menü".
const (
	RoleSoup = "soup"
	RoleMain = "main"
)

// Types used in synthetic cart line ids for package-linked lines.
const (
	TypeMenu  = "menu"  // fixed soup+main combo
	TypeOffer = "offer" // full daily offer package
)

// Offer is one calendar day's curated selection.
// RemainingPortions only ever decreases, and only server-side.
type Offer struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"` // YYYY-MM-DD
	PackagePrice      int       `json:"package_price"`
	MaxPortions       int       `json:"max_portions"`
	RemainingPortions int       `json:"remaining_portions"`
	Note              string    `json:"note,omitempty"`
	Items             []*Item   `json:"items"`
	CreatedAt         time.Time `json:"created_at"`
}

// Item is one dish inside a daily offer. MenuPart items form the
// fixed soup+main combo; the rest are à la carte for that day.
type Item struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int    `json:"price"` // standalone price snapshot
	CategoryID string `json:"category_id"`
	IsMenuPart bool   `json:"is_menu_part"`
	MenuRole   string `json:"menu_role,omitempty"` // soup | main | ""
}

// Soup returns the combo soup item, or nil.
func (o *Offer) Soup() *Item {
	for _, it := range o.Items {
		if it.IsMenuPart && it.MenuRole == RoleSoup {
			return it
		}
	}
	return nil
}

// Main returns the combo main item, or nil.
func (o *Offer) Main() *Item {
	for _, it := range o.Items {
		if it.IsMenuPart && it.MenuRole == RoleMain {
			return it
		}
	}
	return nil
}
