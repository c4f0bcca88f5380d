package post

import (
	"errors"
	"log"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/posts"
)

// Client-facing messages; storage details never reach the response
var errorMessages = map[string]string{
	"not_logged_in":        "Authentication required",
	"no_slurs":             "Post contains disallowed content",
	"community_ban":        "You are banned from this community",
	"site_ban":             "You are banned from this site",
	"no_post_edit_allowed": "You are not allowed to edit this post",
	"couldnt_find_post":    "Post not found",
	"bad_request":          "Invalid request",
	"couldnt_create_post":  "Couldn't create post",
	"couldnt_like_post":    "Couldn't like post",
	"couldnt_update_post":  "Couldn't update post",
	"couldnt_save_post":    "Couldn't save post",
	"couldnt_get_posts":    "Couldn't get posts",
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, op, errorType, message string) {
	handlers.WriteError(w, statusCode, op, errorType, message)
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, op string, err error) {
	if errOp := posts.OpOf(err); errOp != "" {
		op = errOp
	}
	code := posts.CodeOf(err)

	message, known := errorMessages[code]
	if !known {
		log.Printf("[POST] Unexpected error in %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, op, "internal_error", "An internal error occurred")
		return
	}

	writeError(w, statusFor(err), op, code, message)
}

// statusFor maps an error kind to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, posts.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, posts.ErrCommunityBanned),
		errors.Is(err, posts.ErrSiteBanned),
		errors.Is(err, posts.ErrEditNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, posts.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, posts.ErrBadRequest),
		errors.Is(err, posts.ErrDisallowedContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
