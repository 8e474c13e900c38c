// Package services contains server-side business logic. This file implements
// AuthService, which handles account registration, login, and session token
// issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/inkpress/inkpress/internal/common"
	"github.com/inkpress/inkpress/internal/server/auth"
	"github.com/inkpress/inkpress/internal/server/config"
	"github.com/inkpress/inkpress/internal/server/models"
	"github.com/inkpress/inkpress/internal/server/repositories/repomanager"
)

// AuthResult is returned to the caller on successful registration or login.
// RefreshToken is always empty: token rotation is not part of this service.
type AuthResult struct {
	ID           string
	Email        string
	Role         models.Role
	Token        string
	RefreshToken string
	Slug         string
}

// RegisterRequest carries the already-validated registration input.
type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Position string
}

// AuthService provides authentication operations:
//   - Register: create accounts and mint a session token
//   - Login: verify credentials, check activation, mint a session token
//   - VerifyCredentials: nil-on-failure check used by validator strategies
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	hasher        auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
	defaultStatus models.AccountStatus
}

// NewAuthService constructs an AuthService using repositories, a password
// hasher, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		defaultStatus: cfg.DefaultAccountStatus,
	}
}

// Register creates a new account and returns an AuthResult for it.
// A duplicate email yields common.ErrorAlreadyExists whether it is caught by
// the existence pre-check or by the directory's uniqueness constraint, so
// concurrent identical registrations produce exactly one account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	fullName := strings.TrimSpace(req.FullName)

	repo := s.repomanager.Accounts(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	acc := &models.Account{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Username:     slug.Make(fullName),
		Position:     strings.TrimSpace(req.Position),
		Role:         models.RoleUser,
		Status:       s.defaultStatus,
	}

	acc, err = repo.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return s.makeResult(acc)
}

// Login verifies the credentials against the stored account and, on success,
// returns an AuthResult. The check is strictly linear: unknown email yields
// ErrorNotFound, a non-approved account ErrorNotActivated, and a wrong
// secret ErrorUnauthorized. Every failure is terminal for the call.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Accounts(s.db)

	acc, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if acc.Status != models.StatusApproved {
		return nil, common.ErrorNotActivated
	}

	if !s.hasher.Verify(strings.TrimSpace(password), acc.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return s.makeResult(acc)
}

// VerifyCredentials re-expresses "verify email+secret" with a nil-on-failure
// contract: it returns (nil, nil) for an unknown email, a non-approved
// account, or a secret mismatch, and the account (with its hash cleared) on
// success. Validator strategies build on this instead of Login's error
// taxonomy.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	acc, err := repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}

	// Activation gates this path exactly like Login.
	if acc.Status != models.StatusApproved {
		return nil, nil
	}

	if !s.hasher.Verify(strings.TrimSpace(password), acc.PasswordHash) {
		return nil, nil
	}

	sanitized := *acc
	sanitized.PasswordHash = ""
	return &sanitized, nil
}

func (s *AuthService) makeResult(acc *models.Account) (*AuthResult, error) {
	token, err := auth.GenerateToken(acc, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{
		ID:           acc.ID,
		Email:        acc.Email,
		Role:         acc.Role,
		Token:        token,
		RefreshToken: "",
		Slug:         acc.Username,
	}, nil
}
