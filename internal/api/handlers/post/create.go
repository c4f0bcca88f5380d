package post

import (
	"net/http"

	"Agora/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/v1/post
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpCreatePost

	var req posts.CreatePostRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	if !validateRequest(w, op, req) {
		return
	}
	req.Auth = authToken(r, req.Auth)

	response, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
