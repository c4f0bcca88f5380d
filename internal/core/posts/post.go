package posts

import (
	"time"

	"Agora/internal/core/comments"
	"Agora/internal/core/communities"
	"Agora/internal/core/users"
)

// Post is a stored post row
type Post struct {
	Published   time.Time  `json:"published" db:"published"`
	Updated     *time.Time `json:"updated,omitempty" db:"updated"`
	URL         *string    `json:"url,omitempty" db:"url"`
	Body        *string    `json:"body,omitempty" db:"body"`
	Name        string     `json:"name" db:"name"`
	ID          int        `json:"id" db:"id"`
	CreatorID   int        `json:"creator_id" db:"creator_id"`
	CommunityID int        `json:"community_id" db:"community_id"`
	Removed     bool       `json:"removed" db:"removed"`
	Locked      bool       `json:"locked" db:"locked"`
	Deleted     bool       `json:"deleted" db:"deleted"`
	NSFW        bool       `json:"nsfw" db:"nsfw"`
}

// PostForm carries every writable post column.
// Update writes all of them; nil URL/Body/Updated clear the column.
type PostForm struct {
	Updated     *time.Time `db:"updated"`
	URL         *string    `db:"url"`
	Body        *string    `db:"body"`
	Name        string     `db:"name"`
	CreatorID   int        `db:"creator_id"`
	CommunityID int        `db:"community_id"`
	Removed     bool       `db:"removed"`
	Locked      bool       `db:"locked"`
	Deleted     bool       `db:"deleted"`
	NSFW        bool       `db:"nsfw"`
}

// PostView is a post joined with its creator, community, aggregates and
// the viewer-relative fields. MyVote is 0 when the viewer hasn't voted or is anonymous.
type PostView struct {
	Published        time.Time  `json:"published" db:"published"`
	Updated          *time.Time `json:"updated,omitempty" db:"updated"`
	URL              *string    `json:"url,omitempty" db:"url"`
	Body             *string    `json:"body,omitempty" db:"body"`
	Name             string     `json:"name" db:"name"`
	CreatorName      string     `json:"creator_name" db:"creator_name"`
	CommunityName    string     `json:"community_name" db:"community_name"`
	ID               int        `json:"id" db:"id"`
	CreatorID        int        `json:"creator_id" db:"creator_id"`
	CommunityID      int        `json:"community_id" db:"community_id"`
	Score            int        `json:"score" db:"score"`
	Upvotes          int        `json:"upvotes" db:"upvotes"`
	Downvotes        int        `json:"downvotes" db:"downvotes"`
	HotRank          int        `json:"hot_rank" db:"hot_rank"`
	NumberOfComments int        `json:"number_of_comments" db:"number_of_comments"`
	MyVote           int        `json:"my_vote" db:"my_vote"`
	Removed          bool       `json:"removed" db:"removed"`
	Locked           bool       `json:"locked" db:"locked"`
	Deleted          bool       `json:"deleted" db:"deleted"`
	NSFW             bool       `json:"nsfw" db:"nsfw"`
	CommunityRemoved bool       `json:"community_removed" db:"community_removed"`
	CommunityDeleted bool       `json:"community_deleted" db:"community_deleted"`
	CommunityNSFW    bool       `json:"community_nsfw" db:"community_nsfw"`
	Subscribed       bool       `json:"subscribed" db:"subscribed"`
	Saved            bool       `json:"saved" db:"saved"`
}

// ListFilter selects and orders a page of post views
type ListFilter struct {
	CommunityID *int
	ViewerID    *int
	Page        *int64
	Limit       *int64
	Type        ListingType
	Sort        SortType
	ShowNSFW    bool
}

// CreatePostRequest represents input for creating a post
type CreatePostRequest struct {
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Body        *string `json:"body,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
	Auth        string  `json:"auth"`
	CommunityID int     `json:"community_id" validate:"gt=0"`
	NSFW        bool    `json:"nsfw"`
}

// GetPostRequest represents input for fetching one post
type GetPostRequest struct {
	Auth string `json:"auth,omitempty"`
	ID   int    `json:"id" validate:"gt=0"`
}

// GetPostsRequest represents input for listing posts
type GetPostsRequest struct {
	Page        *int64 `json:"page,omitempty" validate:"omitempty,gt=0"`
	Limit       *int64 `json:"limit,omitempty" validate:"omitempty,gt=0,lte=100"`
	CommunityID *int   `json:"community_id,omitempty"`
	Type        string `json:"type_"`
	Sort        string `json:"sort"`
	Auth        string `json:"auth,omitempty"`
}

// CreatePostLikeRequest represents a vote on a post.
// Score 1 or -1 records a vote; anything else clears the voter's vote.
type CreatePostLikeRequest struct {
	Auth   string `json:"auth"`
	PostID int    `json:"post_id" validate:"gt=0"`
	Score  int    `json:"score"`
}

// EditPostRequest represents a full edit of a post.
// CreatorID and CommunityID are accepted for wire compatibility; the stored
// post's values are authoritative.
type EditPostRequest struct {
	URL         *string `json:"url,omitempty" validate:"omitempty,url"`
	Body        *string `json:"body,omitempty"`
	Removed     *bool   `json:"removed,omitempty"`
	Deleted     *bool   `json:"deleted,omitempty"`
	Locked      *bool   `json:"locked,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Name        string  `json:"name" validate:"required,max=100"`
	Auth        string  `json:"auth"`
	EditID      int     `json:"edit_id" validate:"gt=0"`
	CreatorID   int     `json:"creator_id"`
	CommunityID int     `json:"community_id"`
	NSFW        bool    `json:"nsfw"`
}

// SavePostRequest represents a save or unsave
type SavePostRequest struct {
	Auth   string `json:"auth"`
	PostID int    `json:"post_id" validate:"gt=0"`
	Save   bool   `json:"save"`
}

// PostResponse is returned by CreatePost, CreatePostLike, EditPost and SavePost
type PostResponse struct {
	Post *PostView `json:"post"`
	Op   string    `json:"op"`
}

// GetPostResponse is a post with its discussion and community context
type GetPostResponse struct {
	Post       *PostView                    `json:"post"`
	Community  *communities.CommunityView   `json:"community"`
	Op         string                       `json:"op"`
	Comments   []*comments.CommentView      `json:"comments"`
	Moderators []*communities.ModeratorView `json:"moderators"`
	Admins     []*users.UserView            `json:"admins"`
}

// GetPostsResponse is a page of posts
type GetPostsResponse struct {
	Op    string      `json:"op"`
	Posts []*PostView `json:"posts"`
}
