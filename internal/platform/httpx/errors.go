// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("missing required fields")
	ErrUnknownHouse       = errors.New("unknown house")
	ErrUploadFailed       = errors.New("photo upload failed")
	ErrRenderFailed       = errors.New("report rendering failed")
)

// RespondError maps domain errors to HTTP responses using the legacy envelope.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrEmailTaken):
		Fail(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, ErrMissingField):
		Fail(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrUnknownHouse):
		Fail(w, http.StatusBadRequest, "Unknown house")
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, "Not found")
	default:
		Fail(w, http.StatusInternalServerError, "Internal error")
	}
}
