package votes

import (
	"time"
)

// Score values that are persisted in the ledger.
// "No vote" is the absence of a row, never a zero score.
const (
	Upvote   = 1
	Downvote = -1
)

// Vote represents one user's vote on a post
// At most one row exists per (post_id, user_id)
type Vote struct {
	Published time.Time `json:"published" db:"published"`
	ID        int       `json:"id" db:"id"`
	PostID    int       `json:"post_id" db:"post_id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Score     int       `json:"score" db:"score"`
}

// Persistable reports whether a requested score results in a ledger row.
// Anything outside {-1, 1} clears the vote.
func Persistable(score int) bool {
	return score == Upvote || score == Downvote
}
