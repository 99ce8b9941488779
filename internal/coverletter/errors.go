package coverletter

import "errors"

var (
	// ErrValidation is returned when the resume or job description is empty.
	ErrValidation = errors.New("resume and job description are required")

	// ErrNoCredits is returned when a generation is attempted with no credits left.
	// The pricing modal is opened as a side effect.
	ErrNoCredits = errors.New("no credits remaining")

	// ErrGenerationInProgress is returned when a generation is already outstanding.
	ErrGenerationInProgress = errors.New("generation already in progress")

	// ErrGenerationFailed wraps any failure of the outbound generation request.
	ErrGenerationFailed = errors.New("cover letter generation failed")

	// ErrNothingToCopy is returned by Copy before any letter has been generated.
	ErrNothingToCopy = errors.New("no generated letter to copy")

	// ErrCheckoutFailed wraps a failure reported by the checkout collaborator.
	ErrCheckoutFailed = errors.New("checkout failed")
)
