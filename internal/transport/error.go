package transport

import (
	"errors"
	"fmt"
)

// APIError is the single normalized failure shape every upstream call
// produces. Status 0 means the network call itself failed (no response).
// Data carries the parsed response body so structured validation errors
// survive the trip to the error mapper.
//
// Callers distinguish it structurally with errors.As, never by comparing
// concrete types across package boundaries.
type APIError struct {
	Status  int
	Message string
	Data    any
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: network failure: %s", e.Message)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// AsAPIError extracts the normalized error from err, or wraps an arbitrary
// error as a status-0 failure so the caller always has one shape to handle.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Status: 0, Message: err.Error()}
}
