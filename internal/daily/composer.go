package daily

import (
	"fmt"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
)

// Composition is the result of pricing a customer's selection against
// a daily offer's candidate items.
type Composition struct {
	IsComplete    bool `json:"is_complete"`
	TotalPrice    int  `json:"total_price"`
	TotalQuantity int  `json:"total_quantity"`

	// Savings = sum of standalone prices of ALL candidates minus the
	// package price. Raw value; callers surface it only when positive.
	Savings int `json:"-"`
}

// DisplaySavings reports the savings to show the customer. Negative
// savings (package priced above the sum of parts, possible with manual
// pricing) are suppressed rather than shown as a surcharge.
func (c Composition) DisplaySavings() (int, bool) {
	if c.IsComplete && c.Savings > 0 {
		return c.Savings, true
	}
	return 0, false
}

// PackageLineID builds the synthetic cart line id shared by all units
// of one ordered package.
func PackageLineID(dailyType, offerID string) string {
	return fmt.Sprintf("daily_%s_%s", dailyType, offerID)
}

// Compose prices a selection drawn from candidates. quantities maps
// daily item id -> quantity; entries with quantity < 1 are ignored.
//
// The selection is complete when its id set equals the candidate id
// set exactly. A complete selection is ordered as a unit: the package
// quantity is the MAXIMUM quantity across selected items ("2 of the
// soup and 1 of the main" inside a complete selection means 2
// packages). A partial selection is priced per item.
func Compose(candidates []*Item, packagePrice int, quantities map[string]int) Composition {
	selected := make(map[string]int)
	for id, qty := range quantities {
		if qty >= 1 {
			selected[id] = qty
		}
	}

	comp := Composition{}

	complete := len(selected) == len(candidates) && len(candidates) > 0
	sumStandalone := 0
	for _, cand := range candidates {
		sumStandalone += cand.Price
		if _, ok := selected[cand.ID]; !ok {
			complete = false
		}
	}
	comp.IsComplete = complete

	if complete {
		maxQty := 0
		for _, qty := range selected {
			if qty > maxQty {
				maxQty = qty
			}
		}
		comp.TotalQuantity = maxQty
		comp.TotalPrice = packagePrice * maxQty
		comp.Savings = sumStandalone - packagePrice
		return comp
	}

	for _, cand := range candidates {
		qty, ok := selected[cand.ID]
		if !ok {
			continue
		}
		comp.TotalPrice += cand.Price * qty
		comp.TotalQuantity += qty
	}
	return comp
}

// CartLines expands a composed selection into cart lines.
//
// A complete package becomes TotalQuantity separate lines sharing one
// synthetic id, each unit-priced at the package price, so the cart can
// adjust package quantity one unit at a time like any other line. A
// partial selection becomes one line per selected item at its
// standalone price.
func CartLines(
	offer *Offer,
	dailyType string,
	candidates []*Item,
	quantities map[string]int,
	comp Composition,
) []cart.Line {

	var lines []cart.Line

	if comp.IsComplete {
		name := packageName(offer, dailyType, candidates)
		for i := 0; i < comp.TotalQuantity; i++ {
			lines = append(lines, cart.Line{
				ItemID:    PackageLineID(dailyType, offer.ID),
				Name:      name,
				UnitPrice: offer.PackagePrice,
				Quantity:  1,
				DailyType: dailyType,
				DailyDate: offer.Date,
				DailyID:   offer.ID,
			})
		}
		return lines
	}

	for _, cand := range candidates {
		qty, ok := quantities[cand.ID]
		if !ok || qty < 1 {
			continue
		}
		lines = append(lines, cart.Line{
			ItemID:    cand.MenuItemID,
			Name:      cand.Name,
			UnitPrice: cand.Price,
			Quantity:  qty,
			DailyType: dailyType,
			DailyDate: offer.Date,
			DailyID:   offer.ID,
		})
	}
	return lines
}

func packageName(offer *Offer, dailyType string, candidates []*Item) string {
	if dailyType == TypeMenu {
		if soup, main := offer.Soup(), offer.Main(); soup != nil && main != nil {
			return fmt.Sprintf("Napi menü (%s + %s)", soup.Name, main.Name)
		}
		return "Napi menü"
	}
	return fmt.Sprintf("Napi ajánlat (%s)", offer.Date)
}
