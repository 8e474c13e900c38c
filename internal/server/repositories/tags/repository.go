// Package tags persists taxonomy labels.
package tags

import (
	"context"

	"github.com/inkpress/inkpress/internal/server/models"
)

type Repository interface {
	// Create persists a new tag, assigning its ID and creation timestamp.
	// A duplicate slug yields common.ErrorAlreadyExists.
	Create(ctx context.Context, tag *models.Tag) (*models.Tag, error)

	// List returns all tags ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Tag, error)

	// GetByIDs returns the tags whose ids appear in ids; unknown ids are
	// silently skipped.
	GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error)
}
