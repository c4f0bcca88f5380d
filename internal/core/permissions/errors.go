package permissions

import "errors"

var (
	// ErrCommunityBanned is returned when the user is banned from the post's community
	ErrCommunityBanned = errors.New("user is banned from this community")

	// ErrSiteBanned is returned when the user is banned from the whole site
	ErrSiteBanned = errors.New("user is banned from the site")

	// ErrEditNotAllowed is returned when the user is not the creator, a moderator or an admin
	ErrEditNotAllowed = errors.New("user is not allowed to edit this post")
)

// IsBanned checks if error is either kind of ban
func IsBanned(err error) bool {
	return errors.Is(err, ErrCommunityBanned) || errors.Is(err, ErrSiteBanned)
}
