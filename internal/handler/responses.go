package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool holds encode buffers; crafting list payloads embed whole items and
// recipes, so buffers start larger than a typical small response.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Warn(action+" rejected", "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Item database messages
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgSetNotFoundError      = "Set not found"
	ErrMsgItemDatabaseDownError = "The item database is unavailable. Please try again later."

	// Profile and crafting list messages
	ErrMsgProfileNotFoundError = "Profile not found"
	ErrMsgInvalidProfileError  = "Invalid profile name"
	ErrMsgNotInWishlistError   = "That item is not in the crafting list"

	// Sales messages
	ErrMsgExtractorUnavailableError = "Screenshot import is not configured"
	ErrMsgExtractionFailedError     = "The screenshot could not be read"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognised is reported as a generic server error so internal
// details never reach the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrSetNotFound):
		return http.StatusNotFound, ErrMsgSetNotFoundError
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrNotInWishlist):
		return http.StatusNotFound, ErrMsgNotInWishlistError
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, ErrMsgInvalidProfileError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrResolutionFailed):
		return http.StatusBadGateway, ErrMsgItemDatabaseDownError
	case errors.Is(err, domain.ErrExtractorUnavailable):
		return http.StatusNotImplemented, ErrMsgExtractorUnavailableError
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, ErrMsgExtractionFailedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
