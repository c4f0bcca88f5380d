package comments

import "context"

// Repository is the read side of comments consumed when rendering a post
type Repository interface {
	// ListForPost returns a post's comments newest first.
	// viewerID may be nil; limit bounds the page.
	ListForPost(ctx context.Context, postID int, viewerID *int, limit int) ([]*CommentView, error)
}
