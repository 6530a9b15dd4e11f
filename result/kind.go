package result

// Kind tags the variant of an Outcome.
//
// The set is closed: switch statements over Kind in this package list every
// value and treat anything else as ErrUnknownOutcomeVariant.
type Kind uint8

const (
	// KindInvalid is the zero value. It only appears on a zero Outcome that was
	// not produced by a factory.
	KindInvalid Kind = iota
	KindSuccess
	KindBusiness
	KindValidation
	KindAuthorization
	KindServer
	KindProtocol
)

// Status labels written to the "status" field of an Envelope.
const (
	LabelSuccess       = "success"
	LabelBusiness      = "invalid_request"
	LabelValidation    = "validation_error"
	LabelAuthorization = "authorization_error"
	LabelServer        = "server_error"
	LabelProtocol      = "protocol_error"
)

// String returns the Go-facing name of the variant (e.g. "BusinessError").
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindBusiness:
		return "BusinessError"
	case KindValidation:
		return "ValidationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindServer:
		return "ServerError"
	case KindProtocol:
		return "ProtocolError"
	default:
		return "Invalid"
	}
}

// Label returns the envelope status label, or "" for an unknown kind.
func (k Kind) Label() string {
	switch k {
	case KindSuccess:
		return LabelSuccess
	case KindBusiness:
		return LabelBusiness
	case KindValidation:
		return LabelValidation
	case KindAuthorization:
		return LabelAuthorization
	case KindServer:
		return LabelServer
	case KindProtocol:
		return LabelProtocol
	default:
		return ""
	}
}

// Prefix returns the reserved code letter for the variant. The second value is
// false for variants without a reserved letter (Success, Validation).
func (k Kind) Prefix() (byte, bool) {
	switch k {
	case KindBusiness:
		return 'B', true
	case KindAuthorization:
		return 'A', true
	case KindServer:
		return 'S', true
	case KindProtocol:
		return 'P', true
	default:
		return 0, false
	}
}

// ParseLabel is the inverse of Kind.Label.
func ParseLabel(label string) (Kind, bool) {
	switch label {
	case LabelSuccess:
		return KindSuccess, true
	case LabelBusiness:
		return KindBusiness, true
	case LabelValidation:
		return KindValidation, true
	case LabelAuthorization:
		return KindAuthorization, true
	case LabelServer:
		return KindServer, true
	case LabelProtocol:
		return KindProtocol, true
	default:
		return KindInvalid, false
	}
}
