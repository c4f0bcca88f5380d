package post

import (
	"net/http"
	"strconv"

	"Agora/internal/core/posts"
)

// ListHandler handles post listings
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/v1/post/list?type_=&sort=&page=&limit=&community_id=&auth=
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = posts.OpGetPosts
	q := r.URL.Query()

	req := posts.GetPostsRequest{
		Type: q.Get("type_"),
		Sort: q.Get("sort"),
		Auth: authToken(r, q.Get("auth")),
	}

	var err error
	if req.Page, err = queryInt(r, "page"); err != nil {
		writeError(w, http.StatusBadRequest, op, "bad_request", err.Error())
		return
	}
	if req.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(w, http.StatusBadRequest, op, "bad_request", err.Error())
		return
	}
	if raw := q.Get("community_id"); raw != "" {
		communityID, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, op, "bad_request", "community_id must be an integer")
			return
		}
		req.CommunityID = &communityID
	}

	if !validateRequest(w, op, req) {
		return
	}

	response, err := h.service.GetPosts(r.Context(), req)
	if err != nil {
		handleServiceError(w, op, err)
		return
	}

	writeOK(w, response)
}
