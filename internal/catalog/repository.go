package catalog

import "context"

// Repository defines all database operations for the catalog.
// Service and resolver depend ONLY on this interface.
type Repository interface {

	// -------------------------------
	// Items & categories
	// -------------------------------

	GetItem(ctx context.Context, id string) (*MenuItem, error)
	ListActiveItems(ctx context.Context) ([]*MenuItem, error)
	ListActiveByCategory(ctx context.Context, categoryID string) ([]*MenuItem, error)

	// Active items belonging to any of the given categories.
	ListActiveInCategories(ctx context.Context, categoryIDs []string) ([]*MenuItem, error)

	ListCategories(ctx context.Context) ([]*Category, error)

	// Category ids flagged as side-dish categories.
	SideCategoryIDs(ctx context.Context) ([]string, error)

	// -------------------------------
	// Side configuration
	// -------------------------------

	// All configuration rows for one main item, insertion order.
	ListSideConfigs(ctx context.Context, mainItemID string) ([]*SideConfiguration, error)

	// -------------------------------
	// Admin
	// -------------------------------

	CreateItem(ctx context.Context, item *MenuItem) error
	UpdateItemImage(ctx context.Context, itemID, imageURL string) error
	SetItemActive(ctx context.Context, itemID string, active bool) error
}
