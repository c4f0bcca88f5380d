package post

import (
	"net/http"

	"Agora/internal/core/posts"
)

// SaveHandler handles saving and unsaving posts
type SaveHandler struct {
	service posts.Service
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(service posts.Service) *SaveHandler {
	return &SaveHandler{
		service: service,
	}
}

// HandleSave handles PUT /api/v1/post/save
func (h *SaveHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpSavePost

	var req posts.SavePostRequest
	if !decodeBody(w, r, op, &req) {
		return
	}
	if !validateRequest(w, op, req) {
		return
	}
	req.Auth = authToken(r, req.Auth)

	response, err := h.service.SavePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
