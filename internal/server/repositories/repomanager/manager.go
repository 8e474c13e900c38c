// Package repomanager vends repository implementations bound to a database
// handle (connection or transaction) and exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/inkpress/inkpress/internal/dbx"
	"github.com/inkpress/inkpress/internal/server/repositories/accounts"
	"github.com/inkpress/inkpress/internal/server/repositories/posts"
	"github.com/inkpress/inkpress/internal/server/repositories/tags"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Posts(db dbx.DBTX) posts.Repository
	Tags(db dbx.DBTX) tags.Repository
}
