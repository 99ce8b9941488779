// Package generation defines the boundary between the cover letter flow and
// external AI/LLM text-generation services (Gemini). The flow depends only on
// the Generator interface, so tests substitute fakes that return canned text
// or simulate failure.
package generation
