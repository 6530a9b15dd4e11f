package result

import (
	"fmt"
	"strconv"
)

// NormalizeCode converts a caller-supplied code value into its canonical
// string form.
//
// Supported sources:
//   - nil                      -> ""
//   - string                   -> the string itself
//   - fmt.Stringer             -> String(); this is how enumerated symbols
//     (typed constants with a String method) contribute their symbolic name
//   - rune                     -> the single character
//   - other integer types      -> the decimal literal
//
// Any other type yields an *UnsupportedCodeTypeError. That includes named
// types without a String method; convert those with StringCode, IntCode or
// UintCode.
//
// rune is an alias of int32, so an int32 value is always read as a character.
// Numeric codes should be passed as int.
func NormalizeCode(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	case fmt.Stringer:
		return SymbolCode(c), nil
	case rune:
		return CharCode(c), nil
	case int:
		return IntCode(c), nil
	case int8:
		return IntCode(c), nil
	case int16:
		return IntCode(c), nil
	case int64:
		return IntCode(c), nil
	case uint:
		return UintCode(c), nil
	case uint8:
		return UintCode(c), nil
	case uint16:
		return UintCode(c), nil
	case uint32:
		return UintCode(c), nil
	case uint64:
		return UintCode(c), nil
	default:
		return "", &UnsupportedCodeTypeError{Type: fmt.Sprintf("%T", v)}
	}
}

// SymbolCode returns the symbolic name of an enumerated code.
func SymbolCode(s fmt.Stringer) string { return s.String() }

// CharCode returns the string form of a single-character code.
func CharCode(r rune) string { return string(r) }

// Signed and Unsigned are the integer kinds a numeric code may be declared
// with, including named types such as "type ReasonCode int".
type (
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}
)

// StringCode converts a code declared as a named string type:
//
//	type WalletCode string
//	const InsufficientFunds WalletCode = "B100"
//
//	result.Business(result.StringCode(InsufficientFunds), "insufficient funds", trace)
//
// NormalizeCode only recognises the predeclared types, so named code types
// go through StringCode, IntCode or UintCode first.
func StringCode[T ~string](v T) string { return string(v) }

// IntCode returns the decimal form of a signed numeric code. A named int32
// type is numeric here; only a bare rune renders as a character.
func IntCode[T Signed](v T) string { return strconv.FormatInt(int64(v), 10) }

// UintCode returns the decimal form of an unsigned numeric code.
func UintCode[T Unsigned](v T) string { return strconv.FormatUint(uint64(v), 10) }

// checkPrefix enforces the reserved letter of k on a non-empty code. The
// comparison is case-insensitive.
func checkPrefix(k Kind, code string) error {
	want, ok := k.Prefix()
	if !ok || code == "" {
		return nil
	}
	if first := code[0]; first == want || first == want+('a'-'A') {
		return nil
	}
	return &InvalidCodePrefixError{Kind: k, Want: want, Code: code}
}
