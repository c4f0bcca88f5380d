package post

import (
	"net/http"

	"Agora/internal/core/posts"
)

// LikeHandler handles votes on posts
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{
		service: service,
	}
}

// HandleLike handles POST /api/v1/post/like
// A score of 1 or -1 records a vote; any other score clears it.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpCreatePostLike

	var req posts.CreatePostLikeRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	if !validateRequest(w, op, req) {
		return
	}
	req.Auth = authToken(r, req.Auth)

	response, err := h.service.CreatePostLike(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
