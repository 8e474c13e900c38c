package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gosimple/slug"

	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/server/repositories/repomanager"
)

// TagService provides taxonomy operations.
type TagService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTagService(db *sql.DB, m repomanager.RepositoryManager) *TagService {
	return &TagService{db: db, repomanager: m}
}

// Create persists a new tag with a slug derived from its title.
func (s *TagService) Create(ctx context.Context, title string) (*models.Tag, error) {
	title = strings.TrimSpace(title)

	tag := &models.Tag{
		Title:  title,
		Slug:   slug.Make(title),
		Status: true,
	}

	return s.repomanager.Tags(s.db).Create(ctx, tag)
}

// List returns all tags, newest first.
func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.repomanager.Tags(s.db).List(ctx)
}
