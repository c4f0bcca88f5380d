package posts

import (
	"errors"
	"fmt"

	"Agora/internal/core/contentpolicy"
	"Agora/internal/core/permissions"
)

// Operation names carried by every response and error
const (
	OpCreatePost     = "CreatePost"
	OpGetPost        = "GetPost"
	OpGetPosts       = "GetPosts"
	OpCreatePostLike = "CreatePostLike"
	OpEditPost       = "EditPost"
	OpSavePost       = "SavePost"
)

// Error kinds. The ban/policy kinds are shared with the packages that detect them.
var (
	// ErrNotAuthenticated is returned when a token is required but missing or invalid
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDisallowedContent is returned when name or body matches the content filter
	ErrDisallowedContent = contentpolicy.ErrDisallowedContent

	// ErrCommunityBanned is returned when the actor is banned from the post's community
	ErrCommunityBanned = permissions.ErrCommunityBanned

	// ErrSiteBanned is returned when the actor is banned site-wide
	ErrSiteBanned = permissions.ErrSiteBanned

	// ErrEditNotAllowed is returned when the actor is not in the post's editor set
	ErrEditNotAllowed = permissions.ErrEditNotAllowed

	// ErrNotFound is returned when the post does not exist
	ErrNotFound = errors.New("post not found")

	// ErrBadRequest is returned for malformed input such as an unknown sort
	ErrBadRequest = errors.New("bad request")

	ErrCouldntCreatePost = errors.New("couldn't create post")
	ErrCouldntLikePost   = errors.New("couldn't like post")
	ErrCouldntUpdatePost = errors.New("couldn't update post")
	ErrCouldntSavePost   = errors.New("couldn't save post")
	ErrCouldntGetPosts   = errors.New("couldn't get posts")

	// ErrCouldntFindPost is returned when reading a post back fails for a reason other than absence
	ErrCouldntFindPost = errors.New("couldn't find post")
)

// errorCodes maps kinds to their wire codes, most specific first
var errorCodes = []struct {
	kind error
	code string
}{
	{ErrNotAuthenticated, "not_logged_in"},
	{ErrDisallowedContent, "no_slurs"},
	{ErrCommunityBanned, "community_ban"},
	{ErrSiteBanned, "site_ban"},
	{ErrEditNotAllowed, "no_post_edit_allowed"},
	{ErrNotFound, "couldnt_find_post"},
	{ErrBadRequest, "bad_request"},
	{ErrCouldntCreatePost, "couldnt_create_post"},
	{ErrCouldntLikePost, "couldnt_like_post"},
	{ErrCouldntUpdatePost, "couldnt_update_post"},
	{ErrCouldntSavePost, "couldnt_save_post"},
	{ErrCouldntGetPosts, "couldnt_get_posts"},
	{ErrCouldntFindPost, "couldnt_find_post"},
}

// Error is the failure returned by every Service operation.
// Unwrap exposes only Kind; Cause is kept for logs and never reaches clients.
type Error struct {
	Kind  error
	Cause error
	Op    string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Code returns the wire code of the error's kind
func (e *Error) Code() string {
	return CodeOf(e.Kind)
}

// NewError creates an operation error
func NewError(op string, kind, cause error) *Error {
	return &Error{Op: op, Kind: kind, Cause: cause}
}

// CodeOf returns the wire code for err, or "internal_error" when err is not a known kind
func CodeOf(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return "internal_error"
}

// OpOf returns the operation recorded on err, if any
func OpOf(err error) string {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Op
	}
	return ""
}

// IsNotFound checks if err is a missing-post error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadRequest checks if err is a malformed-input error
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}
