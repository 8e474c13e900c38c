package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkpress/inkpress/internal/common"
	"github.com/inkpress/inkpress/internal/dbx"
	"github.com/inkpress/inkpress/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (id, title, content, image, slug, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	post.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Content, post.Image, post.Slug, post.Status).Scan(&post.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) AttachTags(ctx context.Context, postID string, tagIDs []string) error {
	query :=
		`INSERT INTO post_tag (post_id, tag_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	for _, tagID := range tagIDs {
		if _, err := r.db.ExecContext(ctx, query, postID, tagID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) AttachAuthors(ctx context.Context, postID string, accountIDs []string) error {
	query :=
		`INSERT INTO post_author (post_id, account_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	for _, accountID := range accountIDs {
		if _, err := r.db.ExecContext(ctx, query, postID, accountID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	query :=
		`SELECT id, title, content, image, slug, status, created_at FROM posts
		 ORDER BY created_at DESC
		 `
	return r.listPosts(ctx, query)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]models.Post, error) {
	query :=
		`SELECT id, title, content, image, slug, status, created_at FROM posts
		 WHERE status = true
		 ORDER BY created_at DESC
		 `
	return r.listPosts(ctx, query)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query :=
		`SELECT id, title, content, image, slug, status, created_at FROM posts
		 WHERE slug = $1
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&post.ID, &post.Title, &post.Content, &post.Image, &post.Slug, &post.Status, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadRelations(ctx, []*models.Post{post}); err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	q :=
		`SELECT p.title AS name, p.content, p.slug, p.image
		 FROM posts p
		 WHERE search_vector @@ plainto_tsquery('english', $1)
		 ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
		 `

	rows, err := r.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var hits []models.SearchHit
	for rows.Next() {
		var h models.SearchHit
		if err := rows.Scan(&h.Name, &h.Content, &h.Slug, &h.Image); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return hits, nil
}

func (r *PostgresRepository) listPosts(ctx context.Context, query string) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Post
	var refs []*models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Image, &p.Slug, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for i := range result {
		refs = append(refs, &result[i])
	}
	if err := r.loadRelations(ctx, refs); err != nil {
		return nil, err
	}

	return result, nil
}

// loadRelations fills Tags and Authors for the given posts with two grouped
// queries instead of one pair per post.
func (r *PostgresRepository) loadRelations(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*models.Post, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	tagQ :=
		`SELECT pt.post_id, t.id, t.title, t.slug, t.status, t.created_at
		 FROM post_tag pt
		 JOIN tags t ON t.id = pt.tag_id
		 WHERE pt.post_id = ANY($1)
		 `

	rows, err := r.db.QueryContext(ctx, tagQ, ids)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var t models.Tag
		if err := rows.Scan(&postID, &t.ID, &t.Title, &t.Slug, &t.Status, &t.CreatedAt); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if p, ok := byID[postID]; ok {
			p.Tags = append(p.Tags, t)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	authorQ :=
		`SELECT pa.post_id, a.id, a.full_name, a.username
		 FROM post_author pa
		 JOIN accounts a ON a.id = pa.account_id
		 WHERE pa.post_id = ANY($1)
		 `

	authorRows, err := r.db.QueryContext(ctx, authorQ, ids)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer authorRows.Close()

	for authorRows.Next() {
		var postID string
		var a models.AuthorRef
		if err := authorRows.Scan(&postID, &a.ID, &a.FullName, &a.Slug); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if p, ok := byID[postID]; ok {
			p.Authors = append(p.Authors, a)
		}
	}
	if err := authorRows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
