package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/moderation"
)

type postgresModerationRepo struct {
	db *sqlx.DB
}

// NewModerationRepository creates a new PostgreSQL moderation log
func NewModerationRepository(db *sqlx.DB) moderation.Repository {
	return &postgresModerationRepo{db: db}
}

// RecordRemoval appends a mod_remove_post row
func (r *postgresModerationRepo) RecordRemoval(ctx context.Context, record *moderation.RemovePostRecord) error {
	query := `
		INSERT INTO mod_remove_post (mod_user_id, post_id, reason, removed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, when_
	`

	err := r.db.QueryRowxContext(ctx, query,
		record.ModUserID, record.PostID, record.Reason, record.Removed,
	).Scan(&record.ID, &record.When)
	if err != nil {
		return fmt.Errorf("failed to record post removal: %w", err)
	}

	return nil
}

// RecordLock appends a mod_lock_post row
func (r *postgresModerationRepo) RecordLock(ctx context.Context, record *moderation.LockPostRecord) error {
	query := `
		INSERT INTO mod_lock_post (mod_user_id, post_id, locked)
		VALUES ($1, $2, $3)
		RETURNING id, when_
	`

	err := r.db.QueryRowxContext(ctx, query,
		record.ModUserID, record.PostID, record.Locked,
	).Scan(&record.ID, &record.When)
	if err != nil {
		return fmt.Errorf("failed to record post lock: %w", err)
	}

	return nil
}

// ListForPost merges both logs for a post, newest first
func (r *postgresModerationRepo) ListForPost(ctx context.Context, postID int) ([]*moderation.Entry, error) {
	query := `
		SELECT mod_user_id, post_id, 'remove_post' AS action, removed AS value, reason, when_
		FROM mod_remove_post
		WHERE post_id = $1
		UNION ALL
		SELECT mod_user_id, post_id, 'lock_post' AS action, locked AS value, NULL AS reason, when_
		FROM mod_lock_post
		WHERE post_id = $1
		ORDER BY when_ DESC
	`

	var entries []*moderation.Entry
	if err := r.db.SelectContext(ctx, &entries, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list moderation log: %w", err)
	}

	return entries, nil
}
