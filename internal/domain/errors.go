package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the vocabulary backend is unreachable
	ErrServerOffline = errors.New("vocabulary server is unreachable")

	// ErrNotFound indicates the requested word or resource does not exist
	ErrNotFound = errors.New("not found")
)

// APIError is a non-2xx response from the vocabulary backend.
// Message carries the body's "error" field when the server supplied one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status == http.StatusNotFound {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("unexpected status code: %d", e.Status)
}

// Is lets a 404 match ErrNotFound while keeping the server's message
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
