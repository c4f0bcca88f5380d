package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/users"
)

const userViewSelect = `
	SELECT
		u.id, u.name, u.avatar, u.admin, u.banned, u.published,
		(SELECT COUNT(*) FROM posts p WHERE p.creator_id = u.id) AS number_of_posts,
		(SELECT COALESCE(SUM(pl.score), 0)
			FROM posts p JOIN post_likes pl ON pl.post_id = p.id
			WHERE p.creator_id = u.id) AS post_score,
		(SELECT COUNT(*) FROM comments cm WHERE cm.creator_id = u.id) AS number_of_comments,
		(SELECT COALESCE(SUM(cl.score), 0)
			FROM comments cm JOIN comment_likes cl ON cl.comment_id = cm.id
			WHERE cm.creator_id = u.id) AS comment_score
	FROM users u`

type postgresUserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetView retrieves a user with post and comment aggregates
func (r *postgresUserRepo) GetView(ctx context.Context, id int) (*users.UserView, error) {
	var view users.UserView
	err := r.db.GetContext(ctx, &view, userViewSelect+` WHERE u.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &view, nil
}

// ListAdmins returns every site admin ordered by id
func (r *postgresUserRepo) ListAdmins(ctx context.Context) ([]*users.UserView, error) {
	var admins []*users.UserView
	if err := r.db.SelectContext(ctx, &admins, userViewSelect+` WHERE u.admin ORDER BY u.id`); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// GetSiteCreatorID returns the creator of the site row
func (r *postgresUserRepo) GetSiteCreatorID(ctx context.Context) (int, error) {
	var creatorID int
	err := r.db.GetContext(ctx, &creatorID, `SELECT creator_id FROM site ORDER BY id LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, users.ErrSiteNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get site creator: %w", err)
	}
	return creatorID, nil
}
