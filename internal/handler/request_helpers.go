package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BabyBank_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
// Example usage:
//
//	var req SetFieldRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Set field"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetOptionalIntQueryParam parses an optional non-negative integer query parameter.
// If ok is false, a 400 response has already been written.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int, errMsg string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		logger.FromContext(r.Context()).Warn("Invalid query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return n, true
}

// GetOptionalBoolQueryParam parses an optional boolean query parameter.
// If ok is false, a 400 response has already been written.
func GetOptionalBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string, errMsg string) (bool, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return false, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, errMsg)
		return false, false
	}
	return b, true
}

// pathID returns the {id} URL parameter
func pathID(r *http.Request) string {
	return chi.URLParam(r, PathParamID)
}

// LogRequestFields logs common request fields at debug level
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
