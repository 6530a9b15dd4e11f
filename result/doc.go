// Package result implements the response envelope engine shared by every
// endpoint of the API.
//
// Every completed operation is rendered as exactly one Outcome variant:
//
//   - Success:       carries the payload (possibly nil)
//   - Business:      a domain rule was violated (code prefix "B")
//   - Validation:    the request did not pass input validation ("Vnnn")
//   - Authorization: the caller is not allowed to proceed (code prefix "A")
//   - Server:        the server failed to complete the request (code prefix "S")
//   - Protocol:      the transport produced a status the API does not handle
//     explicitly (code "P<status>"); built by the transport boundary only
//
// Outcomes are immutable values created through the factory functions in this
// package. Codes supplied by developers are checked against the variant's
// reserved letter; a mismatch is a programming error and is reported as an
// error wrapping ErrInvalidCodePrefix (or as a panic through Must).
//
// StatusMapper translates an Outcome into an HTTP status code, and Encode /
// Decode convert between an Outcome and the logical wire shape (Envelope):
//
//	{
//	  "status":  "invalid_request",
//	  "traceId": "abc-1",
//	  "error":   { "code": "B100", "message": "insufficient funds" }
//	}
//
// The package performs no I/O and holds no mutable state; all functions are
// safe for concurrent use.
package result
