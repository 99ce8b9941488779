// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates a plain-text prompt
// into a generateContent call through the google.golang.org/genai client and
// maps the response back to a string, without exposing genai types to the
// cover letter flow.
//
// Response handling:
//   - the text of the first candidate's non-thought parts is concatenated
//   - a response with no candidates or no text parts yields ""
//   - a nil response is reported as generation.ErrInvalidResponse
//   - prompt or candidate safety blocks are reported as generation.ErrContentBlocked
//   - client errors wrap generation.ErrGenerationFailed
//
// The generator makes exactly one request per call and never retries.
package gemini
