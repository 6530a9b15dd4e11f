package result

import (
	"regexp"
	"sort"
	"strings"
)

// FallbackValidationCode is assigned to validation messages that do not carry
// their own "Vnnn:" code.
const FallbackValidationCode = "V999"

// validationCodeRE matches messages of the form "V001: ...".
var validationCodeRE = regexp.MustCompile(`^V[0-9]{3}:`)

// FieldErrors is an insertion-ordered mapping of field name to the messages
// recorded for it. The order fields were first added is preserved, which is
// what DeriveValidation relies on to pick "the first" error.
//
// The zero value is ready to use.
type FieldErrors struct {
	order []string
	msgs  map[string][]string
}

// FieldErrorsFromMap builds FieldErrors from a plain map. Fields listed in
// order come first, in that order; remaining keys follow in sorted order so
// the result is deterministic.
func FieldErrorsFromMap(m map[string][]string, order ...string) FieldErrors {
	var fe FieldErrors
	seen := make(map[string]struct{}, len(m))
	for _, f := range order {
		if msgs, ok := m[f]; ok {
			fe.Add(f, msgs...)
			seen[f] = struct{}{}
		}
	}
	rest := make([]string, 0, len(m))
	for f := range m {
		if _, ok := seen[f]; !ok {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		fe.Add(f, m[f]...)
	}
	return fe
}

// Add appends messages to field. A field added with no messages is still
// recorded, which makes DeriveValidation fail on it if it comes first.
func (fe *FieldErrors) Add(field string, msgs ...string) {
	if fe.msgs == nil {
		fe.msgs = make(map[string][]string)
	}
	if _, ok := fe.msgs[field]; !ok {
		fe.order = append(fe.order, field)
		fe.msgs[field] = nil
	}
	fe.msgs[field] = append(fe.msgs[field], msgs...)
}

// Len returns the number of fields.
func (fe FieldErrors) Len() int { return len(fe.order) }

// Fields returns the field names in insertion order.
func (fe FieldErrors) Fields() []string {
	out := make([]string, len(fe.order))
	copy(out, fe.order)
	return out
}

// Messages returns a copy of the messages recorded for field.
func (fe FieldErrors) Messages(field string) []string {
	msgs := fe.msgs[field]
	if msgs == nil {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// First returns the first field and its first message. ok is false when the
// mapping is empty or the first field has no messages.
func (fe FieldErrors) First() (field, msg string, ok bool) {
	if len(fe.order) == 0 {
		return "", "", false
	}
	field = fe.order[0]
	msgs := fe.msgs[field]
	if len(msgs) == 0 {
		return field, "", false
	}
	return field, msgs[0], true
}

// Map returns a copy as a plain map (order is lost).
func (fe FieldErrors) Map() map[string][]string {
	out := make(map[string][]string, len(fe.order))
	for _, f := range fe.order {
		out[f] = fe.Messages(f)
	}
	return out
}

// DeriveValidation classifies the first message of the first field.
//
//   - "V003: must not be blank" -> ("V003", "must not be blank")
//   - "must not be blank. more" -> ("V999", "must not be blank")
//
// Unrecognised formats are not an error: validation text comes from arbitrary
// upstream validators and falls back to FallbackValidationCode.
func DeriveValidation(fields FieldErrors) (code, message string, err error) {
	_, msg, ok := fields.First()
	if !ok {
		return "", "", ErrEmptyValidationInput
	}
	if validationCodeRE.MatchString(msg) {
		code, rest, _ := strings.Cut(msg, ":")
		return code, strings.TrimSpace(rest), nil
	}
	summary, _, _ := strings.Cut(msg, ".")
	return FallbackValidationCode, strings.TrimSpace(summary), nil
}
