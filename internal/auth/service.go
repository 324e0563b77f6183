package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/navigation"
	"github.com/osse101/BabyBank_Go/internal/repository"
)

// Service defines the onboarding screens: role selection, login and registration.
// Each operation reports where the client goes next through nav.
type Service interface {
	SelectRole(ctx context.Context, role domain.Role, nav navigation.Navigator) error
	Login(ctx context.Context, form LoginForm, nav navigation.Navigator) (*domain.Account, error)
	Register(ctx context.Context, form RegisterForm, nav navigation.Navigator) (*domain.Account, error)
}

type service struct {
	repo repository.Account
	bus  event.Bus
	cost int
	now  func() time.Time
}

// NewService creates the auth service. bus may be nil.
func NewService(repo repository.Account, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
		cost: bcrypt.DefaultCost,
		now:  time.Now,
	}
}

// SelectRole continues to registration carrying the chosen role
func (s *service) SelectRole(ctx context.Context, role domain.Role, nav navigation.Navigator) error {
	if role == "" {
		return domain.ErrRoleRequired
	}
	if !domain.SelectableRoles[role] {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	return nav.Navigate(ctx, navigation.RouteRegister, navigation.Params{navigation.ParamRole: string(role)})
}

// Login checks the credentials. Unknown emails and wrong passwords fail the same way.
func (s *service) Login(ctx context.Context, form LoginForm, nav navigation.Navigator) (*domain.Account, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	account, err := s.repo.GetAccountByEmail(ctx, strings.TrimSpace(form.Email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			log.Info(LogMsgLoginFailed, "reason", "unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(form.Password)); err != nil {
		log.Info(LogMsgLoginFailed, "account_id", account.ID, "reason", "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	log.Info(LogMsgLoginSucceeded, "account_id", account.ID)
	if err := nav.Navigate(ctx, navigation.RouteTabs, nil); err != nil {
		return nil, err
	}
	return account, nil
}

// Register creates the account. A missing role defaults to donor.
func (s *service) Register(ctx context.Context, form RegisterForm, nav navigation.Navigator) (*domain.Account, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	role := form.Role
	if role == "" {
		role = domain.RoleDonor
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(form.Email),
		Name:         strings.TrimSpace(form.Name),
		Role:         role,
		Address:      strings.TrimSpace(form.Location),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgAccountRegistered, "account_id", account.ID, "role", account.Role)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewAccountRegisteredEvent(account)); err != nil {
			log.Error(LogMsgPublishFailed, "error", err)
		}
	}

	if err := nav.Navigate(ctx, navigation.RouteTabs, nil); err != nil {
		return nil, err
	}
	return account, nil
}
