package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
//
// Example usage:
//
//	var req AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionAddItem); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetProfileParam reads and validates the {profile} path segment.
// If ok is false, the HTTP response has already been written.
func GetProfileParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, ParamProfile))
	if err == nil {
		err = profile.ValidateName(name)
	}
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid profile path parameter", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidProfileError)
		return "", false
	}
	return name, true
}

// GetIntParam reads a positive integer path segment.
// If ok is false, the HTTP response has already been written.
func GetIntParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid path parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, paramName))
		return 0, false
	}
	return value, true
}
