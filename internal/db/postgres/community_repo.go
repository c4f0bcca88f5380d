package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/communities"
)

type postgresCommunityRepo struct {
	db *sqlx.DB
}

// NewCommunityRepository creates a new PostgreSQL community repository
func NewCommunityRepository(db *sqlx.DB) communities.Repository {
	return &postgresCommunityRepo{db: db}
}

// GetView retrieves a community with subscriber and post counts
func (r *postgresCommunityRepo) GetView(ctx context.Context, id int, viewerID *int) (*communities.CommunityView, error) {
	query := `
		SELECT
			c.id, c.name, c.title, c.description, c.creator_id,
			c.removed, c.deleted, c.nsfw, c.published, c.updated,
			u.name AS creator_name,
			(SELECT COUNT(*) FROM community_followers cf WHERE cf.community_id = c.id) AS number_of_subscribers,
			(SELECT COUNT(*) FROM posts p WHERE p.community_id = c.id) AS number_of_posts,
			EXISTS (
				SELECT 1 FROM community_followers cf
				WHERE cf.community_id = c.id AND cf.user_id = $2
			) AS subscribed
		FROM communities c
		JOIN users u ON u.id = c.creator_id
		WHERE c.id = $1
	`

	var view communities.CommunityView
	err := r.db.GetContext(ctx, &view, query, id, viewerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, communities.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	return &view, nil
}

// ListModerators returns the moderator roster in appointment order
func (r *postgresCommunityRepo) ListModerators(ctx context.Context, communityID int) ([]*communities.ModeratorView, error) {
	query := `
		SELECT
			cm.id, cm.community_id, cm.user_id, cm.published,
			u.name AS user_name,
			c.name AS community_name
		FROM community_moderators cm
		JOIN users u ON u.id = cm.user_id
		JOIN communities c ON c.id = cm.community_id
		WHERE cm.community_id = $1
		ORDER BY cm.published, cm.id
	`

	var mods []*communities.ModeratorView
	if err := r.db.SelectContext(ctx, &mods, query, communityID); err != nil {
		return nil, fmt.Errorf("failed to list moderators: %w", err)
	}

	return mods, nil
}

// IsBanned checks community_user_bans for the pair
func (r *postgresCommunityRepo) IsBanned(ctx context.Context, userID, communityID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM community_user_bans
			WHERE user_id = $1 AND community_id = $2
		)
	`

	var banned bool
	if err := r.db.GetContext(ctx, &banned, query, userID, communityID); err != nil {
		return false, fmt.Errorf("failed to check community ban: %w", err)
	}
	return banned, nil
}
