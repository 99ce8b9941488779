package api

import "github.com/phrazzld/covercraft/internal/coverletter"

// MaxInputLength bounds the resume and job description, in characters.
const MaxInputLength = 50000

// InputsRequest carries the form text for the inputs and generate endpoints.
// Empty values are allowed here; the session decides whether they block
// generation.
type InputsRequest struct {
	Resume         string `json:"resume"          validate:"max=50000"`
	JobDescription string `json:"job_description" validate:"max=50000"`
}

// CopyResponse defines the successful response for the copy endpoint.
type CopyResponse struct {
	// Text is what the page writes to the browser clipboard
	Text string `json:"text"`

	// State reflects the copied flag having been set
	State coverletter.State `json:"state"`
}
