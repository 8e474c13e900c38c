package accounts

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

func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, password_hash, full_name, username, position, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	acc.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		acc.ID, acc.Email, acc.PasswordHash, acc.FullName, acc.Username,
		acc.Position, acc.Role, acc.Status).Scan(&acc.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password_hash, full_name, username, position, role, status, created_at
		 FROM accounts
		 WHERE email = $1
		 `

	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&acc.ID, &acc.Email, &acc.PasswordHash, &acc.FullName, &acc.Username,
		&acc.Position, &acc.Role, &acc.Status, &acc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}
