package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/playerdna/internal/model"
)

// ErrorResponse is the body of every API error
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error messages returned to clients
const (
	MessageSteamIDRequired  = "Steam ID is required"
	MessageNotFound         = "Not found"
	MessageMethodNotAllowed = "Method not allowed"
	MessageInternalError    = "Internal server error"
)

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSteamIDRequired):
		return &httpError{http.StatusBadRequest, MessageSteamIDRequired}
	default:
		return &httpError{http.StatusInternalServerError, MessageInternalError}
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, MessageNotFound}
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, MessageMethodNotAllowed}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, MessageInternalError}
}
