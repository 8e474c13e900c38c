package services

import (
	"context"

	"github.com/inkpress/inkpress/internal/server/models"
)

// CredentialValidator is the pluggable verification contract used by
// authentication-strategy integrations. Implementations return a nil account
// (not an error) when the identifier is unknown or the secret does not
// match; errors are reserved for infrastructure failures.
type CredentialValidator interface {
	Validate(ctx context.Context, identifier, secret string) (*models.Account, error)
}

// PasswordValidator validates an email+password pair against the account
// directory. Other mechanisms (e.g. token-based) can implement
// CredentialValidator without touching AuthService.
type PasswordValidator struct {
	svc *AuthService
}

func NewPasswordValidator(svc *AuthService) *PasswordValidator {
	return &PasswordValidator{svc: svc}
}

func (v *PasswordValidator) Validate(ctx context.Context, identifier, secret string) (*models.Account, error) {
	return v.svc.VerifyCredentials(ctx, identifier, secret)
}
