package communities

import "errors"

var (
	// ErrCommunityNotFound is returned when a community doesn't exist
	ErrCommunityNotFound = errors.New("community not found")
)
