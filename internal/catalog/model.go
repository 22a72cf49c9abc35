package catalog

import "time"

// MenuItem is a dish as the kitchen sells it. Prices are whole HUF,
// so plain ints everywhere; no minor currency unit exists.
type MenuItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           int       `json:"price"`
	Active          bool      `json:"active"`
	CategoryID      string    `json:"category_id"`
	ImageURL        string    `json:"image_url,omitempty"`
	Allergens       []string  `json:"allergens,omitempty"`
	AlwaysAvailable bool      `json:"always_available"`
	CreatedAt       time.Time `json:"created_at"`
}

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsSide bool   `json:"is_side"`
	Rank   int    `json:"rank"`
}

// SideConfiguration links one main course to one eligible side dish.
// Several rows share a MainItemID when a main has more than one side
// option; min/max are expected to agree across those rows.
type SideConfiguration struct {
	MainItemID string `json:"main_item_id"`
	SideItemID string `json:"side_item_id"`
	IsRequired bool   `json:"is_required"`
	MinSelect  int    `json:"min_select"`
	MaxSelect  int    `json:"max_select"`
	IsDefault  bool   `json:"is_default"`
}

// SidePolicy is the aggregate of all SideConfiguration rows for one
// main item: required = OR of rows, min/max taken from the first row.
type SidePolicy struct {
	MainItemID string
	SideIDs    []string
	DefaultIDs []string
	IsRequired bool
	MinSelect  int
	MaxSelect  int
}
