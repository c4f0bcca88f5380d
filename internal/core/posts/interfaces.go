package posts

import "context"

// Service defines the post interaction operations.
// Every response carries its op name and every error is a *Error.
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*PostResponse, error)
	GetPost(ctx context.Context, req GetPostRequest) (*GetPostResponse, error)
	GetPosts(ctx context.Context, req GetPostsRequest) (*GetPostsResponse, error)
	CreatePostLike(ctx context.Context, req CreatePostLikeRequest) (*PostResponse, error)
	EditPost(ctx context.Context, req EditPostRequest) (*PostResponse, error)
	SavePost(ctx context.Context, req SavePostRequest) (*PostResponse, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a post and returns the stored row
	Create(ctx context.Context, form *PostForm) (*Post, error)

	// GetByID returns the stored row, or ErrNotFound
	GetByID(ctx context.Context, id int) (*Post, error)

	// Update overwrites every column of the post from form, or returns ErrNotFound
	Update(ctx context.Context, id int, form *PostForm) (*Post, error)

	// GetView returns the joined view of a post relative to viewerID (nil for anonymous), or ErrNotFound
	GetView(ctx context.Context, id int, viewerID *int) (*PostView, error)

	// List returns a page of views matching filter
	List(ctx context.Context, filter ListFilter) ([]*PostView, error)
}
