package comments

import (
	"time"
)

// CommentView is the read model of a comment shown under a post.
// Comment writes are handled by a separate subsystem.
type CommentView struct {
	Published   time.Time  `json:"published" db:"published"`
	Updated     *time.Time `json:"updated,omitempty" db:"updated"`
	ParentID    *int       `json:"parent_id,omitempty" db:"parent_id"`
	Content     string     `json:"content" db:"content"`
	CreatorName string     `json:"creator_name" db:"creator_name"`
	ID          int        `json:"id" db:"id"`
	CreatorID   int        `json:"creator_id" db:"creator_id"`
	PostID      int        `json:"post_id" db:"post_id"`
	CommunityID int        `json:"community_id" db:"community_id"`
	Score       int        `json:"score" db:"score"`
	Upvotes     int        `json:"upvotes" db:"upvotes"`
	Downvotes   int        `json:"downvotes" db:"downvotes"`
	MyVote      int        `json:"my_vote" db:"my_vote"`
	Removed     bool       `json:"removed" db:"removed"`
	Deleted     bool       `json:"deleted" db:"deleted"`
	Saved       bool       `json:"saved" db:"saved"`
}
