package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable means the backend could not be reached at all.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-success response from the backend. Code and Message come
// from the backend's error body ({"error": CODE, "message": ...}); Message is
// fit for direct display.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
