// Package service contains the action orchestrators: one method per user
// intent. An orchestrator flips its container's loading flag, calls the
// injected gateway, commits the outcome to the container, and returns a
// uniform ActionResult. It is the single catch boundary of the stack —
// failures of any kind come back as a failed result, never as an error the
// UI has to handle.
package service

import (
	"errors"
	"net/http"

	"github.com/naiconmartins/autoflex-production-control/internal/api/metrics"
	"github.com/naiconmartins/autoflex-production-control/internal/state"
	"github.com/naiconmartins/autoflex-production-control/internal/transport"
)

const (
	msgTokenMissing  = "Token not found. Please login again."
	msgUnexpected    = "Unexpected error. Please try again."
	msgInvalidFields = "Some fields are invalid. Please review your input."
)

// ActionResult is the uniform envelope every orchestrator returns. Success
// carries Data; failure carries the mapped user message, the upstream status
// (0 for network failure) and, for validation failures, per-field messages.
type ActionResult[T any] struct {
	Success     bool
	Data        T
	Status      int
	Error       string
	FieldErrors map[string][]string
}

func ok[T any](action string, data T) ActionResult[T] {
	metrics.ActionsTotal.WithLabelValues(action, "success").Inc()
	return ActionResult[T]{Success: true, Data: data}
}

// fail converts any error into a failed result. Normalized transport errors
// keep their status and get the user-facing mapping; anything else becomes a
// generic 500-class failure.
func fail[T any](action string, err error) ActionResult[T] {
	metrics.ActionsTotal.WithLabelValues(action, "failure").Inc()

	var apiErr *transport.APIError
	if errors.As(err, &apiErr) {
		return ActionResult[T]{
			Success:     false,
			Status:      apiErr.Status,
			Error:       transport.ToUserMessage(apiErr),
			FieldErrors: transport.ExtractFieldErrors(apiErr),
		}
	}
	return ActionResult[T]{
		Success: false,
		Status:  http.StatusInternalServerError,
		Error:   msgUnexpected,
	}
}

func failTokenMissing[T any](action string) ActionResult[T] {
	metrics.ActionsTotal.WithLabelValues(action, "failure").Inc()
	return ActionResult[T]{
		Success: false,
		Status:  http.StatusUnauthorized,
		Error:   msgTokenMissing,
	}
}

// pagination converts server page totals into the container's shape.
func pagination(page, size int, totalElements int64, totalPages int) state.Pagination {
	return state.Pagination{
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}

// sizeOf mirrors the page-size normalization for bare-array responses: the
// item count when non-zero, the default page size otherwise.
func sizeOf(n int) int {
	if n == 0 {
		return 10
	}
	return n
}

// invalid builds the failure shape for client-side validation rejections,
// mirroring what a server 422 would have produced.
func invalid[T any](action, message string, fieldErrors map[string][]string) ActionResult[T] {
	metrics.ActionsTotal.WithLabelValues(action, "failure").Inc()
	return ActionResult[T]{
		Success:     false,
		Status:      http.StatusUnprocessableEntity,
		Error:       message,
		FieldErrors: fieldErrors,
	}
}
