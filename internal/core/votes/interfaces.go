package votes

import "context"

// Repository is the vote ledger
type Repository interface {
	// Replace sets the user's vote on a post in a single statement.
	// Score +1/-1 upserts the (post, user) row; any other score deletes it.
	// Clearing a vote that doesn't exist is not an error.
	Replace(ctx context.Context, postID, userID, score int) error

	// Get retrieves the user's current vote on a post
	// Returns ErrVoteNotFound when the user hasn't voted
	Get(ctx context.Context, postID, userID int) (*Vote, error)
}
