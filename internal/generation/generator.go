package generation

import "context"

// Generator is the text-generation capability used by the cover letter flow.
type Generator interface {
	// GenerateText sends prompt to the named model and returns the generated text.
	// A response that carries no text yields "" and a nil error.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}
