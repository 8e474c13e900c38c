package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/server/models"
)

type createTagRequest struct {
	Title string `json:"title"`
}

type tagResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTagResponse(t *models.Tag) tagResponse {
	return tagResponse{ID: t.ID, Title: t.Title, Slug: t.Slug, Status: t.Status, CreatedAt: t.CreatedAt}
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title is required"})
		return
	}

	tag, err := h.tagSvc.Create(r.Context(), req.Title)
	if err != nil {
		h.log.Error(r.Context(), "tag creation failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(tag))
}

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]tagResponse, 0, len(tags))
	for i := range tags {
		resp = append(resp, toTagResponse(&tags[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
