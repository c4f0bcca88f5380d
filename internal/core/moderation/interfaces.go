package moderation

import "context"

// Repository is the append-only moderation log for posts
type Repository interface {
	// RecordRemoval appends a removal record; ID and When are set on success
	RecordRemoval(ctx context.Context, record *RemovePostRecord) error

	// RecordLock appends a lock record; ID and When are set on success
	RecordLock(ctx context.Context, record *LockPostRecord) error

	// ListForPost returns every removal and lock record for a post, newest first
	ListForPost(ctx context.Context, postID int) ([]*Entry, error)
}
