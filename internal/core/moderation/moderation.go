package moderation

import (
	"time"
)

// Action kinds recorded in the moderation log
const (
	ActionRemovePost = "remove_post"
	ActionLockPost   = "lock_post"
)

// RemovePostRecord captures a moderator setting a post's removed flag
type RemovePostRecord struct {
	When      time.Time `json:"when_" db:"when_"`
	Reason    *string   `json:"reason,omitempty" db:"reason"`
	ID        int       `json:"id" db:"id"`
	ModUserID int       `json:"mod_user_id" db:"mod_user_id"`
	PostID    int       `json:"post_id" db:"post_id"`
	Removed   bool      `json:"removed" db:"removed"`
}

// LockPostRecord captures a moderator setting a post's locked flag
type LockPostRecord struct {
	When      time.Time `json:"when_" db:"when_"`
	ID        int       `json:"id" db:"id"`
	ModUserID int       `json:"mod_user_id" db:"mod_user_id"`
	PostID    int       `json:"post_id" db:"post_id"`
	Locked    bool      `json:"locked" db:"locked"`
}

// Entry is one row of a post's moderation history
type Entry struct {
	When      time.Time `json:"when_" db:"when_"`
	Reason    *string   `json:"reason,omitempty" db:"reason"`
	Action    string    `json:"action" db:"action"`
	ModUserID int       `json:"mod_user_id" db:"mod_user_id"`
	PostID    int       `json:"post_id" db:"post_id"`
	Value     bool      `json:"value" db:"value"`
}
