package daily

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetOffer(ctx context.Context, id string) (*Offer, error) {
	return r.getOffer(ctx, `WHERE o.id = $1`, id)
}

func (r *PostgresRepository) GetOfferByDate(ctx context.Context, date string) (*Offer, error) {
	return r.getOffer(ctx, `WHERE o.date = $1`, date)
}

func (r *PostgresRepository) getOffer(ctx context.Context, where string, arg any) (*Offer, error) {
	// date is cast to text: a DATE column has no scan path into the
	// string field in the driver's binary result format.
	var o Offer
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.date::text, o.package_price, o.max_portions,
		       o.remaining_portions, COALESCE(o.note, ''), o.created_at
		FROM daily_offers o
		`+where, arg).Scan(
		&o.ID,
		&o.Date,
		&o.PackagePrice,
		&o.MaxPortions,
		&o.RemainingPortions,
		&o.Note,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, offerID string) ([]*Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT di.id, di.menu_item_id, mi.name, mi.price, mi.category_id,
		       di.is_menu_part, COALESCE(di.menu_role, '')
		FROM daily_offer_items di
		JOIN menu_items mi ON mi.id = di.menu_item_id
		WHERE di.offer_id = $1
		ORDER BY di.is_menu_part DESC, mi.name
	`, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.MenuItemID,
			&it.Name,
			&it.Price,
			&it.CategoryID,
			&it.IsMenuPart,
			&it.MenuRole,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOffers(ctx context.Context, from, to string) ([]*Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id
		FROM daily_offers o
		WHERE o.date >= $1 AND o.date <= $2
		ORDER BY o.date
	`, from, to)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var offers []*Offer
	for _, id := range ids {
		o, err := r.GetOffer(ctx, id)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *PostgresRepository) CreateOffer(ctx context.Context, offer *Offer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO daily_offers (
			id, date, package_price, max_portions,
			remaining_portions, note, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, now())
	`,
		offer.ID,
		offer.Date,
		offer.PackagePrice,
		offer.MaxPortions,
		offer.RemainingPortions,
		offer.Note,
	)
	if err != nil {
		return err
	}

	for _, it := range offer.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO daily_offer_items (
				id, offer_id, menu_item_id, is_menu_part, menu_role
			)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		`, it.ID, offer.ID, it.MenuItemID, it.IsMenuPart, it.MenuRole)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ConsumePortions(ctx context.Context, offerID string, n int) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE daily_offers
		SET remaining_portions = remaining_portions - $2
		WHERE id = $1
		  AND remaining_portions >= $2
	`, offerID, n)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		if _, err := r.GetOffer(ctx, offerID); err != nil {
			return err
		}
		return ErrSoldOut
	}
	return nil
}

func (r *PostgresRepository) ReleasePortions(ctx context.Context, offerID string, n int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE daily_offers
		SET remaining_portions = LEAST(max_portions, remaining_portions + $2)
		WHERE id = $1
	`, offerID, n)
	return err
}
