package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/server/services"
)

type createPostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	TagIDs      []string `json:"tagIds"`
	UserIDs     []string `json:"userIds"`
}

type tagRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Status bool   `json:"status"`
}

type userRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Slug     string `json:"slug"`
}

type postResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Slug      string    `json:"slug"`
	Status    bool      `json:"status"`
	Tags      []tagRef  `json:"tags"`
	Users     []userRef `json:"users"`
}

type searchHitResponse struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
	Image   string `json:"image"`
}

func toPostResponse(p *models.Post) postResponse {
	resp := postResponse{
		CreatedAt: p.CreatedAt,
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Image:     p.Image,
		Slug:      p.Slug,
		Status:    p.Status,
		Tags:      []tagRef{},
		Users:     []userRef{},
	}
	for _, t := range p.Tags {
		resp.Tags = append(resp.Tags, tagRef{ID: t.ID, Title: t.Title, Slug: t.Slug, Status: t.Status})
	}
	for _, a := range p.Authors {
		resp.Users = append(resp.Users, userRef{ID: a.ID, FullName: a.FullName, Slug: a.Slug})
	}
	return resp
}

func toPostResponses(posts []models.Post) []postResponse {
	resp := make([]postResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	return resp
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title is required"})
		return
	}

	post, err := h.postSvc.Create(r.Context(), services.CreatePostRequest{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		TagIDs:      req.TagIDs,
		AuthorIDs:   req.UserIDs,
	})
	if err != nil {
		h.log.Error(r.Context(), "post creation failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postSvc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

func (h *Handlers) ListActivePosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.postSvc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *Handlers) SearchPosts(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or invalid query parameter `q`"})
		return
	}

	hits, err := h.postSvc.Search(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]searchHitResponse, 0, len(hits))
	for _, hit := range hits {
		resp = append(resp, searchHitResponse(hit))
	}
	writeJSON(w, http.StatusOK, resp)
}
