package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/votes"
)

type postgresVoteRepo struct {
	db *sqlx.DB
}

// NewVoteRepository creates a new PostgreSQL vote ledger
func NewVoteRepository(db *sqlx.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// Replace sets the user's vote on a post in a single statement.
// Scores outside {-1, 1} delete the row; the (post_id, user_id) unique
// constraint keeps concurrent votes from the same user to one row.
func (r *postgresVoteRepo) Replace(ctx context.Context, postID, userID, score int) error {
	if !votes.Persistable(score) {
		query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
		if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
			return fmt.Errorf("failed to clear vote: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO post_likes (post_id, user_id, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id)
		DO UPDATE SET score = EXCLUDED.score, published = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, postID, userID, score); err != nil {
		if isForeignKeyViolation(err) {
			return votes.ErrPostNotFound
		}
		return fmt.Errorf("failed to record vote: %w", err)
	}

	return nil
}

// Get retrieves a user's vote on a post
func (r *postgresVoteRepo) Get(ctx context.Context, postID, userID int) (*votes.Vote, error) {
	query := `
		SELECT id, post_id, user_id, score, published
		FROM post_likes
		WHERE post_id = $1 AND user_id = $2
	`

	var vote votes.Vote
	err := r.db.GetContext(ctx, &vote, query, postID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &vote, nil
}
