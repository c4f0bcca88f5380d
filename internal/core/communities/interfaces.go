package communities

import "context"

// Repository is the read side of community data consumed by the post subsystem.
// Community management itself lives elsewhere.
type Repository interface {
	// GetView retrieves a community with aggregate counts.
	// viewerID may be nil for anonymous viewers.
	GetView(ctx context.Context, id int, viewerID *int) (*CommunityView, error)

	// ListModerators returns the current moderator roster, oldest appointment first
	ListModerators(ctx context.Context, communityID int) ([]*ModeratorView, error)

	// IsBanned reports whether the user has an active ban in the community
	IsBanned(ctx context.Context, userID, communityID int) (bool, error)
}
