package generation

import "errors"

// Common errors returned by Generator implementations
var (
	// ErrGenerationFailed is returned when text generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrInvalidResponse is returned when the LLM response is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
