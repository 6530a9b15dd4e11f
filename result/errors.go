package result

import (
	"errors"
	"fmt"
)

// Contract violations. They signal a defect in the calling code, never a
// condition the end user caused, and callers are expected to fail loudly.
var (
	// ErrInvalidCodePrefix is matched by errors returned when a code does not
	// start with the reserved letter of its variant.
	ErrInvalidCodePrefix = errors.New("result: invalid code prefix")

	// ErrUnsupportedCodeType is matched by errors returned by NormalizeCode for
	// code values of a type outside the supported set.
	ErrUnsupportedCodeType = errors.New("result: unsupported code type")

	// ErrEmptyValidationInput is returned when a field-error mapping is empty or
	// its first field carries no messages.
	ErrEmptyValidationInput = errors.New("result: empty validation input")

	// ErrUnknownOutcomeVariant is returned for an Outcome whose kind is not one
	// of the defined variants (e.g. the zero Outcome).
	ErrUnknownOutcomeVariant = errors.New("result: unknown outcome variant")
)

// InvalidCodePrefixError reports a code that violates the prefix invariant of
// a variant.
type InvalidCodePrefixError struct {
	Kind Kind
	Want byte
	Code string
}

func (e *InvalidCodePrefixError) Error() string {
	return fmt.Sprintf("result: %s code %q must start with %q", e.Kind, e.Code, e.Want)
}

// Is makes errors.Is(err, ErrInvalidCodePrefix) hold.
func (e *InvalidCodePrefixError) Is(target error) bool { return target == ErrInvalidCodePrefix }

// UnsupportedCodeTypeError names the offending type of a rejected code value.
type UnsupportedCodeTypeError struct {
	Type string
}

func (e *UnsupportedCodeTypeError) Error() string {
	return fmt.Sprintf("result: unsupported type for error code: %s", e.Type)
}

// Is makes errors.Is(err, ErrUnsupportedCodeType) hold.
func (e *UnsupportedCodeTypeError) Is(target error) bool { return target == ErrUnsupportedCodeType }
