package announce

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) list(ctx context.Context, where string) ([]*Announcement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, body, active_from, active_until, created_at
		FROM announcements
		`+where+`
		ORDER BY active_from DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Body,
			&a.ActiveFrom, &a.ActiveUntil, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*Announcement, error) {
	return r.list(ctx, `WHERE active_from <= now() AND active_until > now()`)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Announcement, error) {
	return r.list(ctx, ``)
}

func (r *PostgresRepository) Create(ctx context.Context, a *Announcement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO announcements (id, title, body, active_from, active_until, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, a.ID, a.Title, a.Body, a.ActiveFrom, a.ActiveUntil)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
