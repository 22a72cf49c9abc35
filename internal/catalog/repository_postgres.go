package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `
	id, name, description, price, active, category_id,
	COALESCE(image_url, ''), COALESCE(allergens, '{}'), always_available, created_at
`

func scanItem(row pgx.Row) (*MenuItem, error) {
	var m MenuItem
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Active,
		&m.CategoryID,
		&m.ImageURL,
		&m.Allergens,
		&m.AlwaysAvailable,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	return scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1
	`, id))
}

func (r *PostgresRepository) listItems(ctx context.Context, query string, args ...any) ([]*MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListActiveItems(ctx context.Context) ([]*MenuItem, error) {
	return r.listItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE active = true
		ORDER BY name
	`)
}

func (r *PostgresRepository) ListActiveByCategory(ctx context.Context, categoryID string) ([]*MenuItem, error) {
	return r.listItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE active = true
		  AND category_id = $1
		ORDER BY name
	`, categoryID)
}

func (r *PostgresRepository) ListActiveInCategories(ctx context.Context, categoryIDs []string) ([]*MenuItem, error) {
	return r.listItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE active = true
		  AND category_id = ANY($1)
		ORDER BY name
	`, categoryIDs)
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, is_side, rank
		FROM categories
		ORDER BY rank, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsSide, &c.Rank); err != nil {
			return nil, err
		}
		cats = append(cats, &c)
	}
	return cats, rows.Err()
}

func (r *PostgresRepository) SideCategoryIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM categories WHERE is_side = true
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) ListSideConfigs(ctx context.Context, mainItemID string) ([]*SideConfiguration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT main_item_id, side_item_id, is_required, min_select, max_select, is_default
		FROM side_configurations
		WHERE main_item_id = $1
		ORDER BY created_at
	`, mainItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*SideConfiguration
	for rows.Next() {
		var sc SideConfiguration
		if err := rows.Scan(
			&sc.MainItemID,
			&sc.SideItemID,
			&sc.IsRequired,
			&sc.MinSelect,
			&sc.MaxSelect,
			&sc.IsDefault,
		); err != nil {
			return nil, err
		}
		configs = append(configs, &sc)
	}
	return configs, rows.Err()
}

// -------------------------------
// Admin
// -------------------------------

func (r *PostgresRepository) CreateItem(ctx context.Context, item *MenuItem) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (
			id, name, description, price, active, category_id,
			image_url, allergens, always_available, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	`,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Active,
		item.CategoryID,
		item.ImageURL,
		item.Allergens,
		item.AlwaysAvailable,
	)
	return err
}

func (r *PostgresRepository) UpdateItemImage(ctx context.Context, itemID, imageURL string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items SET image_url = $1 WHERE id = $2
	`, imageURL, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) SetItemActive(ctx context.Context, itemID string, active bool) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_items SET active = $1 WHERE id = $2
	`, active, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
