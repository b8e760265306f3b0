package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
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

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, so the error can only be logged
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
	// Generic messages
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."

	// Catalog messages
	ErrMsgOptionNotFoundError         = "Option not found"
	ErrMsgExhibitionNotFoundError     = "Exhibition item not found"
	ErrMsgReinforceTableNotFoundError = "No reinforcement table for that equipment level"

	// Roll messages
	ErrMsgEmptyPoolError = "No valid options to roll"

	// Session messages
	ErrMsgSessionNotFoundError = "Session not found"

	// Reinforcement messages
	ErrMsgMaxReinforceError = "Item is already at maximum reinforcement"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors never leak their text to the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrOptionNotFound):
		return http.StatusNotFound, ErrMsgOptionNotFoundError
	case errors.Is(err, domain.ErrExhibitionNotFound):
		return http.StatusNotFound, ErrMsgExhibitionNotFoundError
	case errors.Is(err, domain.ErrReinforceTableNotFound):
		return http.StatusNotFound, ErrMsgReinforceTableNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusUnprocessableEntity, ErrMsgEmptyPoolError
	case errors.Is(err, domain.ErrMaxReinforce):
		return http.StatusUnprocessableEntity, ErrMsgMaxReinforceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrInvalidCatalog):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
