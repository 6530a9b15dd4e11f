package result

import "fmt"

// Envelope is the logical wire shape of an Outcome. Absent fields are omitted
// from the encoded form.
type Envelope struct {
	Status  string     `json:"status" example:"success"`
	TraceID string     `json:"traceId" example:"123e4567-e89b-12d3-a456-426614174000"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error object of a non-success Envelope.
type ErrorBody struct {
	Code    string `json:"code" example:"B100"`
	Message string `json:"message,omitempty" example:"insufficient funds"`
}

// Encode converts o into its Envelope. Encoding the zero Outcome yields an
// envelope with an empty status; callers at the transport boundary should
// resolve the status first and treat that case as a server failure.
func Encode(o Outcome) Envelope {
	env := Envelope{Status: o.kind.Label(), TraceID: o.traceID}
	if o.kind == KindSuccess {
		env.Data = o.data
		return env
	}
	if d, ok := o.Detail(); ok {
		env.Error = &ErrorBody{Code: d.Code, Message: d.Message}
	}
	return env
}

// Decode rebuilds an Outcome from an Envelope. Prefix invariants are checked
// again, so a tampered envelope is rejected the same way a bad factory call is.
func Decode(env Envelope) (Outcome, error) {
	k, ok := ParseLabel(env.Status)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: status %q", ErrUnknownOutcomeVariant, env.Status)
	}
	if k == KindSuccess {
		if env.Error != nil {
			return Outcome{}, fmt.Errorf("result: success envelope carries an error")
		}
		return Success(env.Data, env.TraceID), nil
	}
	if env.Error == nil {
		return Outcome{}, fmt.Errorf("result: %s envelope without error body", k)
	}
	if env.Data != nil {
		return Outcome{}, fmt.Errorf("result: %s envelope carries data", k)
	}
	code, msg := env.Error.Code, env.Error.Message
	switch k {
	case KindBusiness:
		return Business(code, msg, env.TraceID)
	case KindAuthorization:
		return Authorization(code, msg, env.TraceID)
	case KindServer:
		return Server(code, msg, env.TraceID)
	case KindProtocol:
		return Protocol(code, msg, env.TraceID)
	case KindValidation:
		return Validation(code, msg, env.TraceID)
	default:
		return Outcome{}, ErrUnknownOutcomeVariant
	}
}
