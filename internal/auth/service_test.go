package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/navigation"
	"github.com/osse101/BabyBank_Go/internal/repository/memory"
)

type recordedEvents struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recordedEvents) handle(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recordedEvents) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newTestService(t *testing.T) (*service, *recordedEvents) {
	t.Helper()
	bus := event.NewMemoryBus()
	rec := &recordedEvents{}
	bus.Subscribe(event.AccountRegistered, rec.handle)

	return &service{
		repo: memory.NewAccounts(),
		bus:  bus,
		cost: bcrypt.MinCost,
		now:  func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}, rec
}

func registerForm() RegisterForm {
	return RegisterForm{
		Name:            "Alex",
		Email:           "Alex@Example.org",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Location:        "Bristol",
	}
}

func TestSelectRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	nav := navigation.NewRecorder()
	assert.ErrorIs(t, svc.SelectRole(ctx, "", nav), domain.ErrRoleRequired)
	assert.ErrorIs(t, svc.SelectRole(ctx, domain.RoleAdmin, nav), domain.ErrInvalidRole)
	assert.Empty(t, nav.Requests(), "continue is blocked without a valid role")

	require.NoError(t, svc.SelectRole(ctx, domain.RoleRecipient, nav))
	last, ok := nav.Last()
	require.True(t, ok)
	assert.Equal(t, navigation.RouteRegister, last.Route)
	assert.Equal(t, "recipient", last.Params[navigation.ParamRole])
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, rec := newTestService(t)

	nav := navigation.NewRecorder()
	account, err := svc.Register(ctx, registerForm(), nav)
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, domain.RoleDonor, account.Role, "role defaults to donor")
	assert.Equal(t, "Bristol", account.Address)
	assert.NotEqual(t, "hunter22", account.PasswordHash)
	assert.Equal(t, 1, rec.count())

	last, _ := nav.Last()
	assert.Equal(t, navigation.RouteTabs, last.Route)

	loginNav := navigation.NewRecorder()
	got, err := svc.Login(ctx, LoginForm{Email: "alex@example.org", Password: "hunter22"}, loginNav)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	last, _ = loginNav.Last()
	assert.Equal(t, navigation.RouteTabs, last.Route)
}

func TestRegister_Rejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, rec := newTestService(t)

	_, err := svc.Register(ctx, registerForm(), navigation.NewRecorder())
	require.NoError(t, err)

	nav := navigation.NewRecorder()
	_, err = svc.Register(ctx, registerForm(), nav)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	bad := registerForm()
	bad.ConfirmPassword = "nope"
	_, err = svc.Register(ctx, bad, nav)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, nav.Requests())
	assert.Equal(t, 1, rec.count())
}

func TestRegister_LongPasswordIsAFieldError(t *testing.T) {
	t.Parallel()
	svc, rec := newTestService(t)

	form := registerForm()
	form.Password = strings.Repeat("x", 100)
	form.ConfirmPassword = form.Password
	_, err := svc.Register(context.Background(), form, navigation.NewRecorder())

	var fe *domain.FormError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, MsgPasswordTooLong, fe.Fields[FieldPassword])
	assert.Zero(t, rec.count())
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, registerForm(), navigation.NewRecorder())
	require.NoError(t, err)

	nav := navigation.NewRecorder()

	_, err = svc.Login(ctx, LoginForm{Email: "nobody@example.org", Password: "hunter22"}, nav)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginForm{Email: "alex@example.org", Password: "wrong-password"}, nav)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginForm{Email: "not-an-email", Password: "x"}, nav)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, nav.Requests(), "failed logins stay on the login screen")
}
