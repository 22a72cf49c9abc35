package order

import (
	"context"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, session_id, customer_name, phone, email,
			pickup_time, payment_method, status, note, total, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
	`,
		o.ID,
		o.SessionID,
		o.CustomerName,
		o.Phone,
		o.Email,
		o.PickupTime,
		o.PaymentMethod,
		o.Status,
		o.Note,
		o.Total,
	)
	if err != nil {
		return err
	}

	for _, line := range o.Lines {
		sides, err := json.Marshal(line.Sides)
		if err != nil {
			return err
		}
		modifiers, err := json.Marshal(line.Modifiers)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (
				id, order_id, item_id, name, unit_price, quantity,
				sides, modifiers, daily_type, daily_id, line_total
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11)
		`,
			line.ID,
			o.ID,
			line.ItemID,
			line.Name,
			line.UnitPrice,
			line.Quantity,
			sides,
			modifiers,
			line.DailyType,
			line.DailyID,
			line.LineTotal,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, session_id, customer_name, phone, COALESCE(email, ''),
		       pickup_time, payment_method, status, COALESCE(note, ''),
		       total, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.SessionID,
		&o.CustomerName,
		&o.Phone,
		&o.Email,
		&o.PickupTime,
		&o.PaymentMethod,
		&o.Status,
		&o.Note,
		&o.Total,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	lines, err := r.loadLines(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *PostgresRepository) loadLines(ctx context.Context, orderID string) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, name, unit_price, quantity,
		       sides, modifiers,
		       COALESCE(daily_type, ''), COALESCE(daily_id, ''), line_total
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var line Line
		var sides, modifiers []byte
		if err := rows.Scan(
			&line.ID,
			&line.ItemID,
			&line.Name,
			&line.UnitPrice,
			&line.Quantity,
			&sides,
			&modifiers,
			&line.DailyType,
			&line.DailyID,
			&line.LineTotal,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(sides, &line.Sides); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(modifiers, &line.Modifiers); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]*Order, error) {
	query := `
		SELECT id FROM orders
		WHERE ($1 = '' OR created_at::date >= $1::date)
		  AND ($2 = '' OR created_at::date <= $2::date)
		  AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, f.From, f.To, f.Status)
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

	var orders []*Order
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
