package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BabyBank_Go/internal/auth"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/navigation"
)

// AuthHandler serves the onboarding screens
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Routes mounts the auth endpoints on r
func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/role", h.HandleSelectRole)
	r.Post("/login", h.HandleLogin)
	r.Post("/register", h.HandleRegister)
}

// SelectRoleRequest is the role selection screen input
type SelectRoleRequest struct {
	Role string `json:"role" validate:"role"`
}

// LoginRequest is the sign-in form.
// Required fields are checked by the form so errors come back per field.
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254"`
	Password string `json:"password" validate:"max=128"`
}

// RegisterRequest is the sign-up form
type RegisterRequest struct {
	Name            string `json:"name" validate:"max=100"`
	Email           string `json:"email" validate:"max=254"`
	Password        string `json:"password" validate:"max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"max=72"`
	Location        string `json:"location" validate:"max=200"`
	Role            string `json:"role" validate:"role"`
}

// NavigationResponse tells the client which screen to show next
type NavigationResponse struct {
	Message   string            `json:"message"`
	NextRoute navigation.Route  `json:"next_route"`
	Params    navigation.Params `json:"params,omitempty"`
	Account   *domain.Account   `json:"account,omitempty"`
}

// HandleSelectRole continues to registration with the chosen role
// @Summary Select a role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SelectRoleRequest true "Role"
// @Success 200 {object} NavigationResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/role [post]
func (h *AuthHandler) HandleSelectRole(w http.ResponseWriter, r *http.Request) {
	var req SelectRoleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select role"); err != nil {
		return
	}

	nav := navigation.NewRecorder()
	if err := h.service.SelectRole(r.Context(), domain.Role(req.Role), nav); err != nil {
		respondServiceError(w, r, "Select role", err)
		return
	}
	respondNavigation(w, nav, MsgRoleSelected, nil)
}

// HandleLogin signs a member in
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} NavigationResponse
// @Failure 400 {object} ErrorResponse "Per-field form errors"
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	nav := navigation.NewRecorder()
	account, err := h.service.Login(r.Context(), auth.LoginForm{Email: req.Email, Password: req.Password}, nav)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}
	respondNavigation(w, nav, MsgLoginSuccess, account)
}

// HandleRegister creates an account
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration form"
// @Success 201 {object} NavigationResponse
// @Failure 400 {object} ErrorResponse "Per-field form errors"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	nav := navigation.NewRecorder()
	account, err := h.service.Register(r.Context(), auth.RegisterForm{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Location:        req.Location,
		Role:            domain.Role(req.Role),
	}, nav)
	if err != nil {
		respondServiceError(w, r, "Register", err)
		return
	}
	respondNavigationStatus(w, http.StatusCreated, nav, MsgRegisterSuccess, account)
}

func respondNavigation(w http.ResponseWriter, nav *navigation.Recorder, msg string, account *domain.Account) {
	respondNavigationStatus(w, http.StatusOK, nav, msg, account)
}

// respondNavigationStatus reports the last recorded navigation request
func respondNavigationStatus(w http.ResponseWriter, status int, nav *navigation.Recorder, msg string, account *domain.Account) {
	resp := NavigationResponse{Message: msg, Account: account}
	if req, ok := nav.Last(); ok {
		resp.NextRoute = req.Route
		resp.Params = req.Params
	}
	respondJSON(w, status, resp)
}
