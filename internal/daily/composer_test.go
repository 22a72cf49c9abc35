package daily

import "testing"

func menuOffer() *Offer {
	return &Offer{
		ID:           "offer1",
		Date:         "2026-09-01",
		PackagePrice: 1800,
		Items: []*Item{
			{ID: "soup", MenuItemID: "m-soup", Name: "Húsleves", Price: 500, IsMenuPart: true, MenuRole: RoleSoup},
			{ID: "main", MenuItemID: "m-main", Name: "Pörkölt", Price: 1500, IsMenuPart: true, MenuRole: RoleMain},
		},
	}
}

func TestComposeCompleteSelection(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)

	comp := Compose(cands, offer.PackagePrice, map[string]int{"soup": 1, "main": 1})

	if !comp.IsComplete {
		t.Fatal("selecting every candidate must be complete")
	}
	if comp.TotalPrice != 1800 {
		t.Errorf("total = %d, want package price 1800", comp.TotalPrice)
	}
	if comp.TotalQuantity != 1 {
		t.Errorf("quantity = %d, want 1", comp.TotalQuantity)
	}
	savings, ok := comp.DisplaySavings()
	if !ok || savings != 200 {
		t.Errorf("savings = %d (%v), want 200 (500+1500-1800)", savings, ok)
	}
}

func TestComposePartialSelectionPricedPerItem(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)

	comp := Compose(cands, offer.PackagePrice, map[string]int{"soup": 2})

	if comp.IsComplete {
		t.Fatal("soup alone is not a complete package")
	}
	if comp.TotalPrice != 1000 {
		t.Errorf("total = %d, want 2×500 standalone", comp.TotalPrice)
	}
	if comp.TotalQuantity != 2 {
		t.Errorf("quantity = %d, want 2", comp.TotalQuantity)
	}
	if _, ok := comp.DisplaySavings(); ok {
		t.Error("partial selection must never show savings")
	}
}

func TestComposePackageQuantityIsMax(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)

	// 2 soups + 1 main inside a complete selection means 2 packages.
	comp := Compose(cands, offer.PackagePrice, map[string]int{"soup": 2, "main": 1})

	if !comp.IsComplete {
		t.Fatal("both candidates selected, must be complete")
	}
	if comp.TotalQuantity != 2 {
		t.Errorf("quantity = %d, want max(2,1)", comp.TotalQuantity)
	}
	if comp.TotalPrice != 3600 {
		t.Errorf("total = %d, want 2×1800", comp.TotalPrice)
	}
}

func TestComposeIgnoresZeroQuantities(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)

	comp := Compose(cands, offer.PackagePrice, map[string]int{"soup": 1, "main": 0})

	if comp.IsComplete {
		t.Fatal("a zero-quantity entry is not a selection")
	}
	if comp.TotalPrice != 500 {
		t.Errorf("total = %d, want 500", comp.TotalPrice)
	}
}

func TestComposeEmptyCandidates(t *testing.T) {
	comp := Compose(nil, 1800, map[string]int{"x": 1})
	if comp.IsComplete {
		t.Fatal("no candidates can never be complete")
	}
	if comp.TotalPrice != 0 || comp.TotalQuantity != 0 {
		t.Errorf("got total=%d qty=%d, want zeros", comp.TotalPrice, comp.TotalQuantity)
	}
}

func TestNegativeSavingsSuppressed(t *testing.T) {
	offer := menuOffer()
	offer.PackagePrice = 2500 // priced above the sum of parts
	cands := Candidates(offer, TypeMenu)

	comp := Compose(cands, offer.PackagePrice, map[string]int{"soup": 1, "main": 1})

	if !comp.IsComplete {
		t.Fatal("must still be complete")
	}
	if _, ok := comp.DisplaySavings(); ok {
		t.Error("negative savings must be suppressed, never shown as a surcharge")
	}
}

func TestCartLinesCompletePackageExpandsToUnits(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)
	quantities := map[string]int{"soup": 2, "main": 2}
	comp := Compose(cands, offer.PackagePrice, quantities)

	lines := CartLines(offer, TypeMenu, cands, quantities, comp)

	if len(lines) != 2 {
		t.Fatalf("lines = %d, want one per package unit", len(lines))
	}
	wantID := PackageLineID(TypeMenu, offer.ID)
	for _, l := range lines {
		if l.ItemID != wantID {
			t.Errorf("ItemID = %q, want shared synthetic %q", l.ItemID, wantID)
		}
		if l.UnitPrice != 1800 || l.Quantity != 1 {
			t.Errorf("unit = %d qty = %d, want 1800 × 1", l.UnitPrice, l.Quantity)
		}
		if l.DailyID != offer.ID || l.DailyType != TypeMenu {
			t.Errorf("daily link = %q/%q, want %q/%q", l.DailyType, l.DailyID, TypeMenu, offer.ID)
		}
	}
	if lines[0].Name != "Napi menü (Húsleves + Pörkölt)" {
		t.Errorf("name = %q", lines[0].Name)
	}
}

func TestCartLinesPartialSelection(t *testing.T) {
	offer := menuOffer()
	cands := Candidates(offer, TypeMenu)
	quantities := map[string]int{"soup": 2}
	comp := Compose(cands, offer.PackagePrice, quantities)

	lines := CartLines(offer, TypeMenu, cands, quantities, comp)

	if len(lines) != 1 {
		t.Fatalf("lines = %d, want one per selected item", len(lines))
	}
	l := lines[0]
	if l.ItemID != "m-soup" || l.UnitPrice != 500 || l.Quantity != 2 {
		t.Errorf("line = %+v, want the soup at standalone price, qty 2", l)
	}
}

func TestCandidatesForOfferTypeIncludeEverything(t *testing.T) {
	offer := menuOffer()
	offer.Items = append(offer.Items, &Item{
		ID: "extra", MenuItemID: "m-extra", Name: "Palacsinta", Price: 600,
	})

	if got := len(Candidates(offer, TypeMenu)); got != 2 {
		t.Errorf("menu candidates = %d, want only the combo parts", got)
	}
	if got := len(Candidates(offer, TypeOffer)); got != 3 {
		t.Errorf("offer candidates = %d, want the whole day's list", got)
	}
}

func TestPackageLineID(t *testing.T) {
	if got := PackageLineID(TypeMenu, "abc"); got != "daily_menu_abc" {
		t.Errorf("PackageLineID = %q", got)
	}
}
