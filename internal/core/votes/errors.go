package votes

import "errors"

var (
	// ErrVoteNotFound indicates the user has no vote on the post
	ErrVoteNotFound = errors.New("vote not found")

	// ErrPostNotFound indicates the voted post doesn't exist
	ErrPostNotFound = errors.New("post not found")
)
