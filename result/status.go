package result

import (
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMissingTransportStatus is returned by StatusMapper.Status for a Protocol
// outcome whose code carries no usable transport status (e.g. "P", "PX", or a
// status outside 100..999).
var ErrMissingTransportStatus = errors.New("result: protocol outcome without transport status")

// StatusMapper maps outcome variants to HTTP status codes.
//
// AuthorizationStatus selects the status used for authorization failures. Only
// 401 and 403 are meaningful; any other value is treated as 401.
type StatusMapper struct {
	AuthorizationStatus int
}

// DefaultMapper maps authorization failures to 401 Unauthorized.
var DefaultMapper = StatusMapper{AuthorizationStatus: http.StatusUnauthorized}

// authStatus returns the effective authorization status.
func (m StatusMapper) authStatus() int {
	if m.AuthorizationStatus == http.StatusForbidden {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

// Status returns the HTTP status for o.
//
//	Success        200
//	Business       400
//	Validation     400
//	Authorization  401 or 403
//	Server         500
//	Protocol       the transport status that triggered it
func (m StatusMapper) Status(o Outcome) (int, error) {
	switch o.kind {
	case KindSuccess:
		return http.StatusOK, nil
	case KindBusiness, KindValidation:
		return http.StatusBadRequest, nil
	case KindAuthorization:
		return m.authStatus(), nil
	case KindServer:
		return http.StatusInternalServerError, nil
	case KindProtocol:
		if !validTransportStatus(o.status) {
			return 0, ErrMissingTransportStatus
		}
		return o.status, nil
	default:
		return 0, ErrUnknownOutcomeVariant
	}
}

// StatusOrFallback is Status with a 500 fallback for outcomes that cannot be
// represented. Only the encoding boundary should use it.
func (m StatusMapper) StatusOrFallback(o Outcome) int {
	st, err := m.Status(o)
	if err != nil {
		return http.StatusInternalServerError
	}
	return st
}

// IsHandledStatus reports whether status belongs to the set the API produces
// on purpose (200, 400, the authorization status, 500). Anything else seen at
// the transport boundary is wrapped into a Protocol outcome.
func (m StatusMapper) IsHandledStatus(status int) bool {
	switch status {
	case http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError, m.authStatus():
		return true
	default:
		return false
	}
}

// StatusDescription returns a human-readable name for an HTTP status, with
// every word capitalised: 404 -> "Not Found". Codes without a standard name
// render as their decimal value.
func StatusDescription(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return strconv.Itoa(status)
	}
	// Casers carry state; build one per call.
	return cases.Title(language.English, cases.NoLower).String(text)
}
