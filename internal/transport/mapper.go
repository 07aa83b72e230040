package transport

import "net/http"

// Messages shown to the operator, keyed by HTTP status class. Kept in one
// place so the UI wording stays consistent across every resource.
const (
	msgUnavailable  = "The service is temporarily unavailable. Please try again later."
	msgUnauthorized = "Invalid email or password."
	msgForbidden    = "You are not allowed to perform this action."
	msgNotFound     = "The requested resource was not found."
	msgConflict     = "This resource already exists."
	msgValidation   = "Some fields are invalid. Please review your input."
	msgServerError  = "An unexpected server error occurred. Please try again later."
	msgUnknown      = "An unexpected error occurred."
)

// ToUserMessage translates a normalized upstream failure into the message the
// UI shows. Total over all status codes; unknown statuses fall back to the
// raw upstream message when one exists.
func ToUserMessage(err *APIError) string {
	switch {
	case err.Status == 0:
		return msgUnavailable
	case err.Status == http.StatusUnauthorized:
		return msgUnauthorized
	case err.Status == http.StatusForbidden:
		return msgForbidden
	case err.Status == http.StatusNotFound:
		return msgNotFound
	case err.Status == http.StatusConflict:
		return msgConflict
	case err.Status == http.StatusUnprocessableEntity:
		return msgValidation
	case err.Status >= 500:
		return msgServerError
	}
	if err.Message != "" {
		return err.Message
	}
	return msgUnknown
}

// ExtractFieldErrors groups a 422 body's {field, message} entries by field,
// preserving encounter order within each field's list. Returns nil for every
// other status and for missing or malformed bodies; it never panics on
// whatever shape the server sent.
func ExtractFieldErrors(err *APIError) map[string][]string {
	if err.Status != http.StatusUnprocessableEntity {
		return nil
	}
	obj, ok := err.Data.(map[string]any)
	if !ok {
		return nil
	}
	entries, ok := obj["errors"].([]any)
	if !ok {
		return nil
	}

	fields := make(map[string][]string)
	for _, entry := range entries {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		field, _ := item["field"].(string)
		message, _ := item["message"].(string)
		if field == "" {
			continue
		}
		fields[field] = append(fields[field], message)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
