package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyBank_Go/internal/auth"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/navigation"
	"github.com/osse101/BabyBank_Go/mocks"
)

func newAuthRouter(svc auth.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/auth", NewAuthHandler(svc).Routes)
	return r
}

// navigateTo returns a mock.Run hook that performs the navigation a real service would
func navigateTo(route navigation.Route, params navigation.Params) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		nav := args.Get(2).(navigation.Navigator)
		_ = nav.Navigate(args.Get(0).(context.Context), route, params)
	}
}

func TestAuthHandler_SelectRole(t *testing.T) {
	t.Run("continues to register", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("SelectRole", mock.Anything, domain.RoleCharity, mock.Anything).
			Run(navigateTo(navigation.RouteRegister, navigation.Params{navigation.ParamRole: "charity"})).
			Return(nil)

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/role", SelectRoleRequest{Role: "charity"})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp NavigationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, navigation.RouteRegister, resp.NextRoute)
		assert.Equal(t, "charity", resp.Params[navigation.ParamRole])
	})

	t.Run("no selection", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("SelectRole", mock.Anything, domain.Role(""), mock.Anything).Return(domain.ErrRoleRequired)

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/role", SelectRoleRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgRoleRequiredError)
	})

	t.Run("unknown role rejected by validator", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/role", SelectRoleRequest{Role: "admin"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid role")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	account := &domain.Account{ID: "acc-1", Email: "sam@example.com", Role: domain.RoleDonor}

	tests := []struct {
		name           string
		body           LoginRequest
		setupMock      func(*mocks.MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success navigates to tabs",
			body: LoginRequest{Email: "sam@example.com", Password: "secret1"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, auth.LoginForm{Email: "sam@example.com", Password: "secret1"}, mock.Anything).
					Run(navigateTo(navigation.RouteTabs, nil)).
					Return(account, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"next_route":"tabs"`,
		},
		{
			name: "form errors per field",
			body: LoginRequest{Email: "sam"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, auth.LoginForm{Email: "sam"}, mock.Anything).
					Return(nil, domain.NewFormError(map[string]string{
						auth.FieldEmail:    auth.MsgEmailInvalid,
						auth.FieldPassword: auth.MsgPasswordRequired,
					}))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   auth.MsgEmailInvalid,
		},
		{
			name: "wrong credentials",
			body: LoginRequest{Email: "sam@example.com", Password: "wrong1"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgInvalidCredentialsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tt.setupMock(svc)

			rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "password_hash")
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	form := RegisterRequest{
		Name:            "Sam",
		Email:           "sam@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Location:        "Leeds",
		Role:            "recipient",
	}

	t.Run("created", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Register", mock.Anything, mock.MatchedBy(func(f auth.RegisterForm) bool {
			return f.Email == form.Email && f.Role == domain.RoleRecipient && f.ConfirmPassword == form.ConfirmPassword
		}), mock.Anything).
			Run(navigateTo(navigation.RouteTabs, nil)).
			Return(&domain.Account{ID: "acc-2", Email: form.Email, Role: domain.RoleRecipient, PasswordHash: "$2a$..."}, nil)

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/register", form)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"next_route":"tabs"`)
		assert.NotContains(t, rec.Body.String(), "$2a$")
	})

	t.Run("email taken", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/register", form)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgEmailTakenError)
	})

	t.Run("password beyond bcrypt limit never reaches the service", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		long := form
		long.Password = strings.Repeat("x", 100)
		long.ConfirmPassword = long.Password

		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/register", long)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown body fields rejected", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		rec := doJSON(t, newAuthRouter(svc), http.MethodPost, "/auth/register", `{"email":"a@b.co","is_admin":true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
