package saves

import "errors"

// ErrPostNotFound is returned when saving a post that doesn't exist
var ErrPostNotFound = errors.New("post not found")
