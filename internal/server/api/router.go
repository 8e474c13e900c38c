// Package api exposes the HTTP surface of the server: the /api/v1 route tree,
// request/response DTOs, and the token middleware.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkpress/inkpress/internal/logging"
	"github.com/inkpress/inkpress/internal/server/config"
	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/server/services"
)

// Service interfaces consumed by the handlers; the services package provides
// the implementations.
type authService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type postService interface {
	Create(ctx context.Context, req services.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListActive(ctx context.Context) ([]models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Search(ctx context.Context, query string) ([]models.SearchHit, error)
}

type tagService interface {
	Create(ctx context.Context, title string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
}

type Handlers struct {
	log     logging.Logger
	authSvc authService
	postSvc postService
	tagSvc  tagService
}

// NewRouter assembles the HTTP handler tree.
func NewRouter(cfg *config.Config, log logging.Logger, authSvc *services.AuthService, postSvc *services.PostService, tagSvc *services.TagService) http.Handler {
	h := &Handlers{log: log, authSvc: authSvc, postSvc: postSvc, tagSvc: tagSvc}
	return h.routes(cfg)
}

func (h *Handlers) routes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestLogger(h.log))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/create", h.RegisterUser)
		r.Post("/auth/login", h.Login)

		r.Get("/posts", h.ListPosts)
		r.Get("/posts/active", h.ListActivePosts)
		r.Get("/posts/search", h.SearchPosts)
		r.Get("/posts/{slug}", h.GetPost)

		r.Get("/tags", h.ListTags)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth([]byte(cfg.SecretKey)))
			r.Post("/posts", h.CreatePost)
			r.Post("/tags", h.CreateTag)
		})
	})

	return r
}
