// Package handlers defines the wallet HTTP endpoints and the error codes they
// report.
//
// Every response is a result envelope written through the respond package.
// Codes follow the result taxonomy: the first letter names the outcome
// variant (B business, A authorization, S server, V validation) and clients
// branch on the full code.
//
// Example response:
//
//	{
//	  "status": "invalid_request",
//	  "traceId": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "error": { "code": "B100", "message": "insufficient funds" }
//	}
package handlers

const (
	// Business rule failures (400).
	CodeInsufficientFunds = "B100"
	CodeInvalidAmount     = "B101"
	CodeSameAccount       = "B102"
	CodeCurrencyMismatch  = "B103"
	CodeNotFound          = "B404"
	CodeIdempotencyReuse  = "B409"

	// Authorization failures (401 or 403, see AUTHZ_STATUS).
	CodeNotOwner = "A002"

	// Server failures (500).
	CodeStorageFailure = "S100"

	// Validation failures (400). Field rules are catalogued in validation.go.
	CodeMalformedJSON = "V000"
)
