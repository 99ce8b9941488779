// Package api handles incoming HTTP requests for the cover letter page:
// request decoding and validation, dispatch to the browser's session, and
// response formatting. It translates HTTP concerns to session operations
// and maps session errors to status codes and user-facing notices.
package api
