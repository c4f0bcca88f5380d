package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/saves"
)

type postgresSaveRepo struct {
	db *sqlx.DB
}

// NewSaveRepository creates a new PostgreSQL save ledger
func NewSaveRepository(db *sqlx.DB) saves.Repository {
	return &postgresSaveRepo{db: db}
}

// Set inserts or deletes the save relation; repeating either is a no-op
func (r *postgresSaveRepo) Set(ctx context.Context, postID, userID int, saved bool) error {
	if !saved {
		query := `DELETE FROM post_saved WHERE post_id = $1 AND user_id = $2`
		if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
			return fmt.Errorf("failed to unsave post: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO post_saved (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		if isForeignKeyViolation(err) {
			return saves.ErrPostNotFound
		}
		return fmt.Errorf("failed to save post: %w", err)
	}

	return nil
}
