// Package coverletter implements the cover letter generation flow for a single
// browser session: input validation, credit gating, prompt composition, the one
// outbound generation request, the copy-confirmation flag and the pricing modal.
//
// A Session is idle, generating, or done/failed. At most one generation request
// is outstanding per session; a second attempt while one is in flight is
// rejected rather than queued. Credits are spent only on success.
package coverletter
