// Package accounts is the account directory: the only writer of account
// rows and the lookup used by authentication.
package accounts

import (
	"context"

	"github.com/inkpress/inkpress/internal/server/models"
)

type Repository interface {
	// GetByEmail returns the account stored under email, or
	// common.ErrorNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// Create persists a new account, assigning its ID and creation
	// timestamp. A duplicate email yields common.ErrorAlreadyExists,
	// enforced by the storage layer's uniqueness constraint so concurrent
	// creates cannot both succeed.
	Create(ctx context.Context, acc *models.Account) (*models.Account, error)
}
