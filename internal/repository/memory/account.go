package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Accounts is an in-memory repository.Account.
// Emails are compared case-insensitively.
type Accounts struct {
	mu      sync.RWMutex
	byID    map[string]domain.Account
	byEmail map[string]string
}

// NewAccounts returns an empty account store
func NewAccounts() *Accounts {
	return &Accounts{
		byID:    make(map[string]domain.Account),
		byEmail: make(map[string]string),
	}
}

// emailKey builds a fresh Caser per call; Casers are stateful and must not be shared
func (r *Accounts) emailKey(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// CreateAccount stores a new account
func (r *Accounts) CreateAccount(ctx context.Context, account *domain.Account) error {
	if account == nil || account.ID == "" {
		return fmt.Errorf("%w: account id is required", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.emailKey(account.Email)
	if _, taken := r.byEmail[key]; taken {
		return domain.ErrEmailTaken
	}
	r.byID[account.ID] = *account
	r.byEmail[key] = account.ID
	return nil
}

// GetAccountByEmail looks an account up by email
func (r *Accounts) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[r.emailKey(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a := r.byID[id]
	return &a, nil
}

// GetAccountByID looks an account up by id
func (r *Accounts) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}
