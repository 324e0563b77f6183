package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Draft errors
	ErrMsgValidation           = "missing required fields"
	ErrMsgSubmissionFailed     = "submission failed"
	ErrMsgSubmissionInProgress = "a submission is already in progress"
	ErrMsgDraftNotFound        = "draft not found"
	ErrMsgDraftClosed          = "draft is closed"
	ErrMsgUnknownField         = "unknown draft field"
	ErrMsgImageIndex           = "image index out of range"

	// Catalog errors
	ErrMsgUnknownCategory    = "unknown category"
	ErrMsgUnknownCondition   = "unknown condition"
	ErrMsgUnknownAgeGroup    = "unknown age group"
	ErrMsgUnknownQuickFilter = "unknown quick filter"

	// Search errors
	ErrMsgSearchSessionNotFound = "search session not found"

	// Listing errors
	ErrMsgListingNotFound = "listing not found"

	// Account errors
	ErrMsgAccountNotFound    = "account not found"
	ErrMsgInvalidCredentials = "invalid email or password"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidRole        = "invalid role"
	ErrMsgRoleRequired       = "a role must be selected"

	// Storage errors
	ErrMsgStorageUnavailable = "object storage is not configured"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Draft errors
	ErrValidation           = errors.New(ErrMsgValidation)
	ErrSubmissionFailed     = errors.New(ErrMsgSubmissionFailed)
	ErrSubmissionInProgress = errors.New(ErrMsgSubmissionInProgress)
	ErrDraftNotFound        = errors.New(ErrMsgDraftNotFound)
	ErrDraftClosed          = errors.New(ErrMsgDraftClosed)
	ErrUnknownField         = errors.New(ErrMsgUnknownField)
	ErrImageIndex           = errors.New(ErrMsgImageIndex)

	// Catalog errors
	ErrUnknownCategory    = errors.New(ErrMsgUnknownCategory)
	ErrUnknownCondition   = errors.New(ErrMsgUnknownCondition)
	ErrUnknownAgeGroup    = errors.New(ErrMsgUnknownAgeGroup)
	ErrUnknownQuickFilter = errors.New(ErrMsgUnknownQuickFilter)

	// Search errors
	ErrSearchSessionNotFound = errors.New(ErrMsgSearchSessionNotFound)

	// Listing errors
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)

	// Account errors
	ErrAccountNotFound    = errors.New(ErrMsgAccountNotFound)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidRole        = errors.New(ErrMsgInvalidRole)
	ErrRoleRequired       = errors.New(ErrMsgRoleRequired)

	// Storage errors
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ValidationError reports the required draft fields that are still empty
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgValidation, strings.Join(e.Missing, ", "))
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SubmissionError wraps a failure reported by the submission backend
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return ErrMsgSubmissionFailed
	}
	return fmt.Sprintf("%s: %v", ErrMsgSubmissionFailed, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrSubmissionFailed) match any SubmissionError
func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

// FormError maps form field names to a user-facing message
type FormError struct {
	Fields map[string]string
}

// NewFormError returns nil when fields is empty
func NewFormError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &FormError{Fields: fields}
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrMsgInvalidInput, strings.Join(parts, "; "))
}

// Is lets errors.Is(err, ErrInvalidInput) match any FormError
func (e *FormError) Is(target error) bool {
	return target == ErrInvalidInput
}
