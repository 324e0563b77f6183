package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/BabyBank_Go/internal/backend"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/worker"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
// Missing lists required draft fields; Fields maps form fields to messages.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Missing []string          `json:"missing,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Draft messages
	ErrMsgMissingFieldsError      = "Please fill in all required fields"
	ErrMsgSubmissionInProgressErr = "Your item is already being posted"
	ErrMsgSubmissionFailedError   = "Failed to post item. Please try again."
	ErrMsgDraftNotFoundError      = "Draft not found"
	ErrMsgUnknownFieldError       = "Unknown draft field"
	ErrMsgImageIndexError         = "No image at that position"
	ErrMsgSubmitQueueFullError    = "Too many pending submissions. Please try again later."
	ErrMsgStorageUnavailableError = "Photo uploads are not available right now"
	ErrMsgBackendUnavailableError = "The marketplace is temporarily unavailable. Please try again later."

	// Catalog messages
	ErrMsgUnknownCategoryError    = "Unknown category"
	ErrMsgUnknownConditionError   = "Unknown condition"
	ErrMsgUnknownAgeGroupError    = "Unknown age group"
	ErrMsgUnknownQuickFilterError = "Unknown quick filter"

	// Search messages
	ErrMsgSearchSessionNotFoundErr = "Search session not found"
	ErrMsgListingNotFoundError     = "Listing not found"

	// Account messages
	ErrMsgInvalidCredentialsError = "Invalid email or password"
	ErrMsgEmailTakenError         = "An account with this email already exists"
	ErrMsgInvalidRoleError        = "Invalid role"
	ErrMsgRoleRequiredError       = "Please select a role to continue"
	ErrMsgAccountNotFoundError    = "Account not found"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, ErrMsgMissingFieldsError
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return http.StatusConflict, ErrMsgSubmissionInProgressErr
	// A backend rejection is reported as a failed submission whatever its cause
	case errors.Is(err, domain.ErrSubmissionFailed):
		return http.StatusBadGateway, ErrMsgSubmissionFailedError
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError

	case errors.Is(err, domain.ErrDraftNotFound), errors.Is(err, domain.ErrDraftClosed):
		return http.StatusNotFound, ErrMsgDraftNotFoundError
	case errors.Is(err, domain.ErrSearchSessionNotFound):
		return http.StatusNotFound, ErrMsgSearchSessionNotFoundErr
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError

	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, ErrMsgUnknownCategoryError
	case errors.Is(err, domain.ErrUnknownCondition):
		return http.StatusBadRequest, ErrMsgUnknownConditionError
	case errors.Is(err, domain.ErrUnknownAgeGroup):
		return http.StatusBadRequest, ErrMsgUnknownAgeGroupError
	case errors.Is(err, domain.ErrUnknownQuickFilter):
		return http.StatusBadRequest, ErrMsgUnknownQuickFilterError
	case errors.Is(err, domain.ErrUnknownField):
		return http.StatusBadRequest, ErrMsgUnknownFieldError
	case errors.Is(err, domain.ErrImageIndex):
		return http.StatusBadRequest, ErrMsgImageIndexError
	case errors.Is(err, domain.ErrRoleRequired):
		return http.StatusBadRequest, ErrMsgRoleRequiredError
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, ErrMsgInvalidRoleError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError

	case errors.Is(err, backend.ErrUnavailable):
		return http.StatusBadGateway, ErrMsgBackendUnavailableError
	case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolStopped):
		return http.StatusServiceUnavailable, ErrMsgSubmitQueueFullError
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped status.
// Validation failures carry the missing field list and form errors carry the per-field messages.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	resp := ErrorResponse{Error: msg}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		resp.Missing = vErr.Missing
	}
	var fErr *domain.FormError
	if errors.As(err, &fErr) {
		resp.Fields = fErr.Fields
	}

	respondJSON(w, status, resp)
}
