package users

import "context"

// Repository is the read side of user and site data consumed by the post subsystem
type Repository interface {
	// GetView retrieves a user by id
	// Returns ErrUserNotFound for unknown ids
	GetView(ctx context.Context, id int) (*UserView, error)

	// ListAdmins returns every site admin ordered by id
	ListAdmins(ctx context.Context) ([]*UserView, error)

	// GetSiteCreatorID returns the id of the user who created the site
	// Returns ErrSiteNotFound when no site row exists
	GetSiteCreatorID(ctx context.Context) (int, error)
}
