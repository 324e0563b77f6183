package auth

import (
	"strings"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// LoginForm is the sign-in screen input
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate returns a *domain.FormError keyed by field, or nil
func (f LoginForm) Validate() error {
	errs := make(map[string]string)
	checkEmail(errs, f.Email)
	if f.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}
	return domain.NewFormError(errs)
}

// RegisterForm is the sign-up screen input. Role comes from the role selection screen.
type RegisterForm struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirm_password"`
	Location        string      `json:"location"`
	Role            domain.Role `json:"role"`
}

// Validate returns a *domain.FormError keyed by field, or nil
func (f RegisterForm) Validate() error {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	checkEmail(errs, f.Email)

	switch {
	case f.Password == "":
		errs[FieldPassword] = MsgPasswordRequired
	case len(f.Password) < MinPasswordLength:
		errs[FieldPassword] = MsgPasswordTooShort
	case len(f.Password) > MaxPasswordBytes:
		errs[FieldPassword] = MsgPasswordTooLong
	}
	if f.Password != f.ConfirmPassword {
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}
	if strings.TrimSpace(f.Location) == "" {
		errs[FieldLocation] = MsgLocationRequired
	}
	if f.Role != "" && !domain.SelectableRoles[f.Role] {
		errs[FieldRole] = domain.ErrMsgInvalidRole
	}

	return domain.NewFormError(errs)
}

func checkEmail(errs map[string]string, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = MsgEmailInvalid
	}
}
