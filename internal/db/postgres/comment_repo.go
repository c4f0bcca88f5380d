package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"Agora/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sqlx.DB
}

// NewCommentRepository creates a new PostgreSQL comment reader
func NewCommentRepository(db *sqlx.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// ListForPost returns a post's comments newest first with viewer-relative vote and save state
func (r *postgresCommentRepo) ListForPost(ctx context.Context, postID int, viewerID *int, limit int) ([]*comments.CommentView, error) {
	query := `
		SELECT
			c.id, c.creator_id, c.post_id, c.parent_id, c.content,
			c.removed, c.deleted, c.published, c.updated,
			u.name AS creator_name,
			p.community_id,
			COALESCE(l.score, 0) AS score,
			COALESCE(l.upvotes, 0) AS upvotes,
			COALESCE(l.downvotes, 0) AS downvotes,
			COALESCE(cl.score, 0) AS my_vote,
			EXISTS (
				SELECT 1 FROM comment_saved cs
				WHERE cs.comment_id = c.id AND cs.user_id = $2
			) AS saved
		FROM comments c
		JOIN users u ON u.id = c.creator_id
		JOIN posts p ON p.id = c.post_id
		LEFT JOIN (
			SELECT comment_id,
				SUM(score) AS score,
				COUNT(*) FILTER (WHERE score = 1) AS upvotes,
				COUNT(*) FILTER (WHERE score = -1) AS downvotes
			FROM comment_likes
			GROUP BY comment_id
		) l ON l.comment_id = c.id
		LEFT JOIN comment_likes cl ON cl.comment_id = c.id AND cl.user_id = $2
		WHERE c.post_id = $1
		ORDER BY c.published DESC, c.id DESC
		LIMIT $3
	`

	var list []*comments.CommentView
	if err := r.db.SelectContext(ctx, &list, query, postID, viewerID, limit); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return list, nil
}
