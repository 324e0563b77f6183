package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/BabyBank_Go/internal/domain"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	sharedValidator *Validator
	validatorOnce   sync.Once
)

// GetValidator returns the process-wide validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() { sharedValidator = newValidator() })
	return sharedValidator
}

func newValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("quickfilter", validateQuickFilter)
	return &Validator{validate: v}
}

// jsonFieldName reports fields by their JSON names so errors line up with the request body
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

var tagMessages = map[string]string{
	"required":    "This field is required",
	"role":        "Invalid role",
	"quickfilter": "Unknown quick filter",
	"excludesall": "Contains invalid characters",
}

// FormatValidationError maps each failing field, by JSON name, to a client-facing message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return "Must be one of: " + fe.Param()
	}
	return "Invalid value"
}

// validateRole accepts the roles offered at sign-up. Empty passes; the service applies the default.
func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == "" || domain.SelectableRoles[domain.Role(role)]
}

func validateQuickFilter(fl validator.FieldLevel) bool {
	return domain.ValidQuickFilters[domain.QuickFilter(fl.Field().String())]
}
