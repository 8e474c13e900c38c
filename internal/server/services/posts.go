package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/inkpress/inkpress/internal/common"
	"github.com/inkpress/inkpress/internal/dbx"
	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/server/repositories/repomanager"
)

// CreatePostRequest carries the input for creating a post.
type CreatePostRequest struct {
	Title       string
	Description string
	Image       string
	TagIDs      []string
	AuthorIDs   []string
}

// PostService provides content operations over the posts/tags repositories.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// Create persists a post together with its tag and author links in a single
// transaction; no links survive a failed insert.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	title := strings.TrimSpace(req.Title)

	post := &models.Post{
		Title:   title,
		Content: req.Description,
		Image:   req.Image,
		Slug:    slug.Make(title),
		Status:  true,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Posts(tx)
		if _, err := repo.Create(ctx, post); err != nil {
			return err
		}
		if err := repo.AttachTags(ctx, post.ID, req.TagIDs); err != nil {
			return err
		}
		if err := repo.AttachAuthors(ctx, post.ID, req.AuthorIDs); err != nil {
			return err
		}

		// Return the created post with its tag projections filled in.
		tagsAttached, err := s.repomanager.Tags(tx).GetByIDs(ctx, req.TagIDs)
		if err != nil {
			return err
		}
		post.Tags = tagsAttached
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.repomanager.Posts(s.db).ListAll(ctx)
}

// ListActive returns only publicly visible posts, newest first.
func (s *PostService) ListActive(ctx context.Context) ([]models.Post, error) {
	return s.repomanager.Posts(s.db).ListActive(ctx)
}

// GetBySlug returns one post or common.ErrorNotFound.
func (s *PostService) GetBySlug(ctx context.Context, postSlug string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).GetBySlug(ctx, postSlug)
}

// Search runs a ranked full-text query over titles and content.
func (s *PostService) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	return s.repomanager.Posts(s.db).Search(ctx, query)
}
