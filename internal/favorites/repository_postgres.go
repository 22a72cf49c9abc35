package favorites

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

func (r *PostgresRepository) List(ctx context.Context, sessionID string) ([]Favorite, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT data FROM favorites WHERE session_id = $1
	`, sessionID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var favs []Favorite
	if err := json.Unmarshal(data, &favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, sessionID string, favorites []Favorite) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO favorites (session_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, sessionID, data)
	return err
}
