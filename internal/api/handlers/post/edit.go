package post

import (
	"net/http"

	"Agora/internal/core/posts"
)

// EditHandler handles post edits, including moderator remove and lock
type EditHandler struct {
	service posts.Service
}

// NewEditHandler creates a new edit handler
func NewEditHandler(service posts.Service) *EditHandler {
	return &EditHandler{
		service: service,
	}
}

// HandleEdit handles PUT /api/v1/post
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpEditPost

	var req posts.EditPostRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	if !validateRequest(w, op, req) {
		return
	}
	req.Auth = authToken(r, req.Auth)

	response, err := h.service.EditPost(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
