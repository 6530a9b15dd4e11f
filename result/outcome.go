package result

import (
	"fmt"
	"strconv"
)

// Detail is the error part of a non-success Outcome.
type Detail struct {
	Code    string
	Message string
}

// Outcome is the result of a completed operation. The zero value is not a
// valid outcome; use the factory functions.
//
// Outcome is a small immutable value. Copying it is cheap and never shares
// mutable state with the source value.
type Outcome struct {
	kind    Kind
	traceID string
	data    any
	detail  Detail
	// status is the transport status that produced a Protocol outcome.
	status int
}

// Kind returns the variant tag.
func (o Outcome) Kind() Kind { return o.kind }

// TraceID returns the correlation identifier attached at construction.
func (o Outcome) TraceID() string { return o.traceID }

// Data returns the success payload. ok is false for every non-success variant.
// A success built with a nil payload reports (nil, true).
func (o Outcome) Data() (data any, ok bool) {
	if o.kind != KindSuccess {
		return nil, false
	}
	return o.data, true
}

// Detail returns the error detail. ok is false for Success and for the zero
// Outcome.
func (o Outcome) Detail() (d Detail, ok bool) {
	switch o.kind {
	case KindBusiness, KindValidation, KindAuthorization, KindServer, KindProtocol:
		return o.detail, true
	default:
		return Detail{}, false
	}
}

// TransportStatus returns the HTTP status that triggered a Protocol outcome,
// or 0 for any other variant.
func (o Outcome) TransportStatus() int {
	if o.kind != KindProtocol {
		return 0
	}
	return o.status
}

// IsSuccess reports whether o is a Success outcome.
func (o Outcome) IsSuccess() bool { return o.kind == KindSuccess }

// String renders the outcome for logs, e.g. "BusinessError[B100] trace=abc-1".
func (o Outcome) String() string {
	if o.kind == KindSuccess {
		return fmt.Sprintf("%s trace=%s", o.kind, o.traceID)
	}
	return fmt.Sprintf("%s[%s] trace=%s", o.kind, o.detail.Code, o.traceID)
}

// Success builds a Success outcome carrying data.
func Success(data any, traceID string) Outcome {
	return Outcome{kind: KindSuccess, traceID: traceID, data: data}
}

// Business builds a BusinessError. The code must start with "B".
func Business(code any, message, traceID string) (Outcome, error) {
	return newFailure(KindBusiness, code, message, traceID)
}

// Authorization builds an AuthorizationError. The code must start with "A".
func Authorization(code any, message, traceID string) (Outcome, error) {
	return newFailure(KindAuthorization, code, message, traceID)
}

// Server builds a ServerError. The code must start with "S".
func Server(code any, message, traceID string) (Outcome, error) {
	return newFailure(KindServer, code, message, traceID)
}

// Protocol builds a ProtocolError. The code must start with "P".
//
// Protocol outcomes describe conditions detected by the transport layer; business
// code should never construct them. The transport status is recovered from the
// digits following the prefix when present (e.g. "P404" -> 404).
func Protocol(code any, message, traceID string) (Outcome, error) {
	o, err := newFailure(KindProtocol, code, message, traceID)
	if err != nil {
		return Outcome{}, err
	}
	o.status = statusFromProtocolCode(o.detail.Code)
	return o, nil
}

// ProtocolFromStatus wraps a raw transport status that the API does not handle
// explicitly. The code is "P<status>" and the message is the status
// description (404 -> "Not Found").
//
// A status outside 100..999 cannot be written on the wire; the resulting
// outcome is refused by StatusMapper.Status with ErrMissingTransportStatus.
func ProtocolFromStatus(status int, traceID string) Outcome {
	return Outcome{
		kind:    KindProtocol,
		traceID: traceID,
		detail: Detail{
			Code:    "P" + strconv.Itoa(status),
			Message: StatusDescription(status),
		},
		status: status,
	}
}

// Validation builds a ValidationError with an explicit code. The code is used
// verbatim; no reserved letter is enforced.
func Validation(code any, message, traceID string) (Outcome, error) {
	return newFailure(KindValidation, code, message, traceID)
}

// ValidationFromFields builds a ValidationError whose code and message are
// derived from the first message of the first field (see DeriveValidation).
func ValidationFromFields(fields FieldErrors, traceID string) (Outcome, error) {
	code, msg, err := DeriveValidation(fields)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		kind:    KindValidation,
		traceID: traceID,
		detail:  Detail{Code: code, Message: msg},
	}, nil
}

// Must returns o or panics with err. It is meant for call sites whose codes are
// compile-time constants, where a contract violation can only be a bug.
func Must(o Outcome, err error) Outcome {
	if err != nil {
		panic(err)
	}
	return o
}

func newFailure(k Kind, code any, message, traceID string) (Outcome, error) {
	c, err := NormalizeCode(code)
	if err != nil {
		return Outcome{}, err
	}
	if err := checkPrefix(k, c); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		kind:    k,
		traceID: traceID,
		detail:  Detail{Code: c, Message: message},
	}, nil
}

// statusFromProtocolCode parses the numeric suffix of a protocol code. It
// returns 0 when the suffix is not a valid HTTP status.
func statusFromProtocolCode(code string) int {
	if len(code) < 2 {
		return 0
	}
	n, err := strconv.Atoi(code[1:])
	if err != nil || !validTransportStatus(n) {
		return 0
	}
	return n
}

// validTransportStatus reports whether n fits a three-digit HTTP status line.
func validTransportStatus(n int) bool { return n >= 100 && n <= 999 }
