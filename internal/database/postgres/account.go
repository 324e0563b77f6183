package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

const accountColumns = `account_id::text, email, name, role, address, password_hash, verified, rating, review_count, created_at`

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts an account; emails are unique regardless of case
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	if account == nil || account.ID == "" {
		return fmt.Errorf("%w: account id is required", domain.ErrInvalidInput)
	}

	query := `
		INSERT INTO accounts (account_id, email, name, role, address, password_hash, verified, rating,
			review_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Email, account.Name, string(account.Role), account.Address, account.PasswordHash,
		account.Verified, account.Rating, account.ReviewCount, account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}
	return nil
}

// GetAccountByEmail looks an account up by email, ignoring case
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE LOWER(email) = LOWER($1)`, email)
}

// GetAccountByID looks an account up by id
func (r *AccountRepository) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id::text = $1`, id)
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg string) (*domain.Account, error) {
	var (
		a    domain.Account
		role string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Email, &a.Name, &role, &a.Address, &a.PasswordHash,
		&a.Verified, &a.Rating, &a.ReviewCount, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	a.Role = domain.Role(role)
	return &a, nil
}
