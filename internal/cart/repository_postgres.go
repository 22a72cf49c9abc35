package cart

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

func (r *PostgresRepository) Load(ctx context.Context, sessionID string) ([]Line, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT data FROM cart_sessions WHERE session_id = $1
	`, sessionID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *PostgresRepository) Save(ctx context.Context, sessionID string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_sessions (session_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, sessionID, data)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_sessions WHERE session_id = $1
	`, sessionID)
	return err
}
