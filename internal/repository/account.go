package repository

import (
	"context"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Account defines the interface for member account persistence
type Account interface {
	// CreateAccount fails with domain.ErrEmailTaken when the email is already registered
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
}
