package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/inkpress/inkpress/internal/common"
	"github.com/inkpress/inkpress/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakePostsRepo{}
	tagRepo := &fakeTagsRepo{byIDsOut: []models.Tag{
		{ID: "t-1", Title: "Go", Slug: "go", Status: true},
		{ID: "t-2", Title: "News", Slug: "news", Status: true},
	}}
	s := NewPostService(db, &fakeRepoManager{p: repo, t: tagRepo})

	post, err := s.Create(context.Background(), CreatePostRequest{
		Title:       " First Post ",
		Description: "Hello world",
		Image:       "https://img.example/x.png",
		TagIDs:      []string{"t-1", "t-2"},
		AuthorIDs:   []string{"acc-1"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if post.Slug != "first-post" || post.Title != "First Post" || !post.Status {
		t.Fatalf("unexpected post: %+v", post)
	}
	if len(repo.attachedTags) != 2 || len(repo.attachedAuthors) != 1 {
		t.Fatalf("links not attached: tags=%v authors=%v", repo.attachedTags, repo.attachedAuthors)
	}
	if len(post.Tags) != 2 || post.Tags[0].Slug != "go" {
		t.Fatalf("tag projections not loaded: %+v", post.Tags)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestPostCreate_RollsBackOnAttachError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakePostsRepo{attachTagsErr: errors.New("fk violation")}
	s := NewPostService(db, &fakeRepoManager{p: repo})

	_, err := s.Create(context.Background(), CreatePostRequest{Title: "First Post", TagIDs: []string{"t-1"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestPostCreate_DuplicateSlug(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakePostsRepo{createErr: common.ErrorAlreadyExists}
	s := NewPostService(db, &fakeRepoManager{p: repo})

	_, err := s.Create(context.Background(), CreatePostRequest{Title: "First Post"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestPostGetBySlug_PassesThroughNotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)

	repo := &fakePostsRepo{getErr: common.ErrorNotFound}
	s := NewPostService(db, &fakeRepoManager{p: repo})

	_, err := s.GetBySlug(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
