package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/inkpress/inkpress/internal/dbx"
	"github.com/inkpress/inkpress/internal/server/models"
	accountsrepo "github.com/inkpress/inkpress/internal/server/repositories/accounts"
	postsrepo "github.com/inkpress/inkpress/internal/server/repositories/posts"
	tagsrepo "github.com/inkpress/inkpress/internal/server/repositories/tags"
)

// --- shared fakes ---

type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(secret string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "h:" + secret, nil
}

func (f *fakeHasher) Verify(candidate, encoded string) bool {
	return encoded == "h:"+candidate
}

type fakeAccountsRepo struct {
	getOut *models.Account
	getErr error

	createErr   error
	createdWith *models.Account
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAccountsRepo) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {
	f.createdWith = acc
	if f.createErr != nil {
		return nil, f.createErr
	}
	acc.ID = uuid.NewString()
	acc.CreatedAt = time.Now()
	return acc, nil
}

type fakePostsRepo struct {
	createErr error
	created   *models.Post

	attachedTags    []string
	attachedAuthors []string
	attachTagsErr   error

	listOut   []models.Post
	getOut    *models.Post
	getErr    error
	searchOut []models.SearchHit
}

func (f *fakePostsRepo) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now()
	f.created = post
	return post, nil
}

func (f *fakePostsRepo) AttachTags(ctx context.Context, postID string, tagIDs []string) error {
	if f.attachTagsErr != nil {
		return f.attachTagsErr
	}
	f.attachedTags = append(f.attachedTags, tagIDs...)
	return nil
}

func (f *fakePostsRepo) AttachAuthors(ctx context.Context, postID string, accountIDs []string) error {
	f.attachedAuthors = append(f.attachedAuthors, accountIDs...)
	return nil
}

func (f *fakePostsRepo) ListAll(ctx context.Context) ([]models.Post, error)    { return f.listOut, nil }
func (f *fakePostsRepo) ListActive(ctx context.Context) ([]models.Post, error) { return f.listOut, nil }

func (f *fakePostsRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePostsRepo) Search(ctx context.Context, query string) ([]models.SearchHit, error) {
	return f.searchOut, nil
}

type fakeTagsRepo struct {
	createErr   error
	createdWith *models.Tag
	listOut     []models.Tag
	byIDsOut    []models.Tag
}

func (f *fakeTagsRepo) Create(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	f.createdWith = tag
	if f.createErr != nil {
		return nil, f.createErr
	}
	tag.ID = uuid.NewString()
	tag.CreatedAt = time.Now()
	return tag, nil
}

func (f *fakeTagsRepo) List(ctx context.Context) ([]models.Tag, error) { return f.listOut, nil }

func (f *fakeTagsRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return f.byIDsOut, nil
}

type fakeRepoManager struct {
	a *fakeAccountsRepo
	p *fakePostsRepo
	t *fakeTagsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository     { return m.a }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository           { return m.p }
func (m *fakeRepoManager) Tags(db dbx.DBTX) tagsrepo.Repository             { return m.t }
