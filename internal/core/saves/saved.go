package saves

import (
	"context"
	"time"
)

// SavedPost marks a post bookmarked by a user
// Unique per (post_id, user_id)
type SavedPost struct {
	Published time.Time `json:"published" db:"published"`
	ID        int       `json:"id" db:"id"`
	PostID    int       `json:"post_id" db:"post_id"`
	UserID    int       `json:"user_id" db:"user_id"`
}

// Repository is the save ledger
type Repository interface {
	// Set ensures the save relation exists when saved is true and is absent otherwise.
	// Both directions are idempotent.
	Set(ctx context.Context, postID, userID int, saved bool) error
}
