package post

import (
	"net/http"
	"strconv"

	"Agora/internal/core/posts"
)

// GetHandler handles single post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGet handles GET /api/v1/post?id=&auth=
// Anonymous callers are allowed.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpGetPost

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, op, "bad_request", "id must be an integer")
		return
	}

	req := posts.GetPostRequest{
		ID:   id,
		Auth: authToken(r, r.URL.Query().Get("auth")),
	}
	if !validateRequest(w, op, req) {
		return
	}

	response, err := h.service.GetPost(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
