package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"school-portal/internal/domain/account"
	apperrors "school-portal/pkg/errors"
)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `
		SELECT id, name, primary_email, password_hash, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

// GetByEmail resolves login emails: the primary account email wins, and any
// access card email bound to the account works as a fallback.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT id, name, primary_email, password_hash, created_at, updated_at
		FROM accounts
		WHERE primary_email = $1
	`

	a, err := r.scanOne(ctx, query, email)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	cardQuery := `
		SELECT a.id, a.name, a.primary_email, a.password_hash, a.created_at, a.updated_at
		FROM access_cards ac
		JOIN accounts a ON ac.account_id = a.id
		WHERE ac.email = $1
		ORDER BY ac.created_at
		LIMIT 1
	`

	return r.scanOne(ctx, cardQuery, email)
}

func (r *AccountRepository) scanOne(ctx context.Context, query string, arg any) (*account.Account, error) {
	a := &account.Account{}
	err := r.db.Pool.QueryRow(ctx, query, arg).Scan(
		&a.ID,
		&a.Name,
		&a.PrimaryEmail,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errAccountNotFound)
		}
		return nil, apperrors.StoreUnavailable("account lookup failed", fmt.Errorf(errFailedGetAccountFmt, err))
	}

	return a, nil
}
