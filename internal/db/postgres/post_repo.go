package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/posts"
)

// Listing defaults when the request omits page or limit
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

const postColumns = `id, name, url, body, creator_id, community_id, removed, locked, deleted, nsfw, published, updated`

// hotRankExpr decays a post's score with age: log-scaled votes over (hours + 2)^1.8
const hotRankExpr = `FLOOR(10000 * LOG(GREATEST(1, COALESCE(l.score, 0) + 3)) /
		POWER(((EXTRACT(EPOCH FROM (NOW() - p.published)) / 3600) + 2), 1.8))::int`

// postViewSelect selects PostView columns. The three viewer placeholders
// (saved, subscribed, my_vote) come first in argument order.
const postViewSelect = `
	SELECT
		p.id, p.name, p.url, p.body, p.creator_id, p.community_id,
		p.removed, p.locked, p.deleted, p.nsfw, p.published, p.updated,
		u.name AS creator_name,
		c.name AS community_name,
		c.removed AS community_removed,
		c.deleted AS community_deleted,
		c.nsfw AS community_nsfw,
		COALESCE(l.score, 0) AS score,
		COALESCE(l.upvotes, 0) AS upvotes,
		COALESCE(l.downvotes, 0) AS downvotes,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS number_of_comments,
		` + hotRankExpr + ` AS hot_rank,
		EXISTS (SELECT 1 FROM post_saved ps WHERE ps.post_id = p.id AND ps.user_id = ?) AS saved,
		EXISTS (SELECT 1 FROM community_followers cf WHERE cf.community_id = p.community_id AND cf.user_id = ?) AS subscribed,
		COALESCE(pl.score, 0) AS my_vote
	FROM posts p
	JOIN users u ON u.id = p.creator_id
	JOIN communities c ON c.id = p.community_id
	LEFT JOIN (
		SELECT post_id,
			SUM(score) AS score,
			COUNT(*) FILTER (WHERE score = 1) AS upvotes,
			COUNT(*) FILTER (WHERE score = -1) AS downvotes
		FROM post_likes
		GROUP BY post_id
	) l ON l.post_id = p.id
	LEFT JOIN post_likes pl ON pl.post_id = p.id AND pl.user_id = ?`

// sortClauses whitelists ORDER BY expressions
var sortClauses = map[posts.SortType]string{
	posts.SortHot:      "hot_rank DESC, p.published DESC",
	posts.SortNew:      "p.published DESC",
	posts.SortTopDay:   "score DESC, p.published DESC",
	posts.SortTopWeek:  "score DESC, p.published DESC",
	posts.SortTopMonth: "score DESC, p.published DESC",
	posts.SortTopYear:  "score DESC, p.published DESC",
	posts.SortTopAll:   "score DESC, p.published DESC",
}

// topWindows bounds the Top sorts by publication age
var topWindows = map[posts.SortType]string{
	posts.SortTopDay:   "1 day",
	posts.SortTopWeek:  "1 week",
	posts.SortTopMonth: "1 month",
	posts.SortTopYear:  "1 year",
}

type postgresPostRepo struct {
	db *sqlx.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sqlx.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, form *posts.PostForm) (*posts.Post, error) {
	query := `
		INSERT INTO posts (
			name, url, body, creator_id, community_id,
			removed, locked, deleted, nsfw
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + postColumns

	var post posts.Post
	err := r.db.GetContext(ctx, &post, query,
		form.Name, form.URL, form.Body, form.CreatorID, form.CommunityID,
		form.Removed, form.Locked, form.Deleted, form.NSFW,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("creator or community does not exist: %w", err)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &post, nil
}

// GetByID retrieves a stored post row
func (r *postgresPostRepo) GetByID(ctx context.Context, id int) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post posts.Post
	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// Update replaces every mutable column. A nil form.Updated stamps NOW().
func (r *postgresPostRepo) Update(ctx context.Context, id int, form *posts.PostForm) (*posts.Post, error) {
	query := `
		UPDATE posts SET
			name = $2,
			url = $3,
			body = $4,
			creator_id = $5,
			community_id = $6,
			removed = $7,
			locked = $8,
			deleted = $9,
			nsfw = $10,
			updated = COALESCE($11, NOW())
		WHERE id = $1
		RETURNING ` + postColumns

	var post posts.Post
	err := r.db.GetContext(ctx, &post, query,
		id, form.Name, form.URL, form.Body, form.CreatorID, form.CommunityID,
		form.Removed, form.Locked, form.Deleted, form.NSFW, form.Updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &post, nil
}

// GetView retrieves the joined view of a post relative to the viewer
func (r *postgresPostRepo) GetView(ctx context.Context, id int, viewerID *int) (*posts.PostView, error) {
	query := r.db.Rebind(postViewSelect + `
	WHERE p.id = ?`)

	var view posts.PostView
	err := r.db.GetContext(ctx, &view, query, viewerID, viewerID, viewerID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	return &view, nil
}

// List returns a filtered, sorted page of post views.
// Removed or deleted posts and posts in removed or deleted communities are never listed.
func (r *postgresPostRepo) List(ctx context.Context, filter posts.ListFilter) ([]*posts.PostView, error) {
	orderBy, ok := sortClauses[filter.Sort]
	if !ok {
		return nil, fmt.Errorf("unsupported sort %q", filter.Sort)
	}

	where := []string{
		"p.removed = FALSE",
		"p.deleted = FALSE",
		"c.removed = FALSE",
		"c.deleted = FALSE",
	}
	args := []interface{}{filter.ViewerID, filter.ViewerID, filter.ViewerID}

	if !filter.ShowNSFW {
		where = append(where, "p.nsfw = FALSE", "c.nsfw = FALSE")
	}

	if filter.CommunityID != nil {
		where = append(where, "p.community_id = ?")
		args = append(args, *filter.CommunityID)
	}

	if filter.Type == posts.ListingSubscribed {
		where = append(where, "EXISTS (SELECT 1 FROM community_followers f WHERE f.community_id = p.community_id AND f.user_id = ?)")
		args = append(args, filter.ViewerID)
	}

	if filter.Sort.IsTop() {
		if window, ok := topWindows[filter.Sort]; ok {
			where = append(where, fmt.Sprintf("p.published > NOW() - INTERVAL '%s'", window))
		}
	}

	limit, offset := limitAndOffset(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := r.db.Rebind(postViewSelect + `
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY ` + orderBy + `
	LIMIT ? OFFSET ?`)

	var list []*posts.PostView
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return list, nil
}

// limitAndOffset applies the listing defaults
func limitAndOffset(page, limit *int64) (int64, int64) {
	p, l := int64(DefaultPage), int64(DefaultLimit)
	if page != nil && *page > 0 {
		p = *page
	}
	if limit != nil && *limit > 0 {
		l = *limit
	}
	return l, (p - 1) * l
}
