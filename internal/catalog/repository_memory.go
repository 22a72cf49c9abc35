package catalog

import "context"

// InMemoryRepository backs service and resolver tests.
type InMemoryRepository struct {
	Items       map[string]*MenuItem
	Categories  []*Category
	SideConfigs map[string][]*SideConfiguration
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Items:       make(map[string]*MenuItem),
		SideConfigs: make(map[string][]*SideConfiguration),
	}
}

func (r *InMemoryRepository) GetItem(_ context.Context, id string) (*MenuItem, error) {
	item, ok := r.Items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (r *InMemoryRepository) ListActiveItems(_ context.Context) ([]*MenuItem, error) {
	var items []*MenuItem
	for _, m := range r.Items {
		if m.Active {
			items = append(items, m)
		}
	}
	return items, nil
}

func (r *InMemoryRepository) ListActiveByCategory(ctx context.Context, categoryID string) ([]*MenuItem, error) {
	return r.ListActiveInCategories(ctx, []string{categoryID})
}

func (r *InMemoryRepository) ListActiveInCategories(_ context.Context, categoryIDs []string) ([]*MenuItem, error) {
	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}
	var items []*MenuItem
	for _, m := range r.Items {
		if m.Active && wanted[m.CategoryID] {
			items = append(items, m)
		}
	}
	return items, nil
}

func (r *InMemoryRepository) ListCategories(_ context.Context) ([]*Category, error) {
	return r.Categories, nil
}

func (r *InMemoryRepository) SideCategoryIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, c := range r.Categories {
		if c.IsSide {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (r *InMemoryRepository) ListSideConfigs(_ context.Context, mainItemID string) ([]*SideConfiguration, error) {
	return r.SideConfigs[mainItemID], nil
}

func (r *InMemoryRepository) CreateItem(_ context.Context, item *MenuItem) error {
	r.Items[item.ID] = item
	return nil
}

func (r *InMemoryRepository) UpdateItemImage(_ context.Context, itemID, imageURL string) error {
	item, ok := r.Items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.ImageURL = imageURL
	return nil
}

func (r *InMemoryRepository) SetItemActive(_ context.Context, itemID string, active bool) error {
	item, ok := r.Items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.Active = active
	return nil
}
