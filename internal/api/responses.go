package api

import (
	"net/http"
	"strings"

	"github.com/daylist/daylist-api/internal/api/shared"
)

// RespondWithJSON writes a JSON response. Thin forwarder to the shared
// implementation so handlers in this package stay unqualified.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// SanitizeValidationError converts a go-playground/validator error into a
// user-friendly message naming the failing field without echoing input.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return "invalid " + field + ": " + validationTagMessage(tag)
				}
				return "invalid " + field
			}
		}
	}

	return "validation failed"
}

// validationTagMessage maps validation tags to user-friendly descriptions.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
