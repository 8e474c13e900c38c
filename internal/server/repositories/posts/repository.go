// Package posts persists content items and their tag/author links.
package posts

import (
	"context"

	"github.com/inkpress/inkpress/internal/server/models"
)

type Repository interface {
	// Create persists a new post, assigning its ID and creation timestamp.
	// A duplicate slug yields common.ErrorAlreadyExists.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)

	// AttachTags links the post to the given tag ids.
	AttachTags(ctx context.Context, postID string, tagIDs []string) error

	// AttachAuthors links the post to the given account ids.
	AttachAuthors(ctx context.Context, postID string, accountIDs []string) error

	// ListAll returns every post, newest first, with tags and authors loaded.
	ListAll(ctx context.Context) ([]models.Post, error)

	// ListActive returns posts with status=true, newest first, with tags and
	// authors loaded.
	ListActive(ctx context.Context) ([]models.Post, error)

	// GetBySlug returns one post with tags and authors loaded, or
	// common.ErrorNotFound.
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)

	// Search runs a full-text query over title and content, ranked by
	// relevance.
	Search(ctx context.Context, query string) ([]models.SearchHit, error)
}
