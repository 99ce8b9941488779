package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/covercraft/internal/coverletter"
)

// User-facing notices.
const (
	msgValidation         = "Please provide both your resume and the job description."
	msgNoCredits          = "You have no credits remaining. Subscribe to continue."
	msgInProgress         = "A cover letter is already being generated."
	msgGenerationFailed   = "Failed to generate cover letter. Please try again."
	msgNothingToCopy      = "There is no cover letter to copy yet."
	msgCheckoutFailed     = "Subscription failed. Please try again."
	msgUnexpected         = "An unexpected error occurred"
	msgInvalidRequest     = "Invalid request format"
	msgSessionUnavailable = "Session not available"
)

// MapErrorToStatusCode maps session errors to HTTP status codes. This keeps
// internal error types and messages out of responses.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, coverletter.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, coverletter.ErrNoCredits):
		return http.StatusPaymentRequired

	case errors.Is(err, coverletter.ErrGenerationInProgress),
		errors.Is(err, coverletter.ErrNothingToCopy):
		return http.StatusConflict

	// Upstream failures
	case errors.Is(err, coverletter.ErrGenerationFailed),
		errors.Is(err, coverletter.ErrCheckoutFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing notice for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, coverletter.ErrValidation):
		return msgValidation
	case errors.Is(err, coverletter.ErrNoCredits):
		return msgNoCredits
	case errors.Is(err, coverletter.ErrGenerationInProgress):
		return msgInProgress
	case errors.Is(err, coverletter.ErrGenerationFailed):
		return msgGenerationFailed
	case errors.Is(err, coverletter.ErrNothingToCopy):
		return msgNothingToCopy
	case errors.Is(err, coverletter.ErrCheckoutFailed):
		return msgCheckoutFailed
	default:
		return msgUnexpected
	}
}

// SanitizeValidationError removes internal details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'InputsRequest.Resume' Error:Field validation for 'Resume' failed on the 'max' tag"
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
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
