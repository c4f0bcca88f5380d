package users

import "errors"

// Sentinel errors for user lookups
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrSiteNotFound is returned when the site hasn't been set up yet
	ErrSiteNotFound = errors.New("site not found")
)
