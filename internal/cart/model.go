package cart

// SideRef is a name+id snapshot of a chosen side dish. Sides carry no
// price delta in this system.
type SideRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Modifier is an extra applied to a line (e.g. "extra sajt"),
// priced per unit of the line.
type Modifier struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PriceDelta int    `json:"price_delta"`
}

// Line is one cart entry. Name and UnitPrice are snapshots taken at
// add time so catalog edits mid-session never silently reprice a line
// the customer already agreed to.
type Line struct {
	// LineID addresses the line inside its cart; assigned by the store.
	LineID string `json:"line_id"`

	// ItemID is the originating menu item id, or the shared synthetic
	// daily_<type>_<offerId> id for package-linked lines.
	ItemID string `json:"item_id"`

	Name      string     `json:"name"`
	UnitPrice int        `json:"unit_price"`
	Quantity  int        `json:"quantity"`
	Sides     []SideRef  `json:"sides,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`

	// Set only on daily-offer-linked lines.
	DailyType string `json:"daily_type,omitempty"` // menu | offer
	DailyDate string `json:"daily_date,omitempty"`
	DailyID   string `json:"daily_id,omitempty"`
}

// lineTotal is unit price plus per-unit modifier deltas, times quantity.
func (l *Line) lineTotal() int {
	unit := l.UnitPrice
	for _, m := range l.Modifiers {
		unit += m.PriceDelta
	}
	return unit * l.Quantity
}

// Snapshot is an immutable view of a cart, with totals recomputed at
// capture time, never cached.
type Snapshot struct {
	Items     []Line `json:"items"`
	Total     int    `json:"total"`
	ItemCount int    `json:"item_count"`
}

// CompleteMenu is what the daily service hands the store when the
// customer orders the fixed soup+main combo in one step.
type CompleteMenu struct {
	OfferID           string
	Date              string
	Name              string
	PackagePrice      int
	RemainingPortions int
	HasSoup           bool
	HasMain           bool
}
