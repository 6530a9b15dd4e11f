package result

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeriveValidation(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantCode string
		wantMsg  string
	}{
		{"coded", "V003: must not be blank", "V003", "must not be blank"},
		{"coded no space", "V120:too long", "V120", "too long"},
		{"coded with extra colons", "V001: expected a:b", "V001", "expected a:b"},
		{"fallback with period", "must not be blank.additional info", "V999", "must not be blank"},
		{"fallback without period", "Title is a required field", "V999", "Title is a required field"},
		{"lowercase v is not a code", "v003: nope. more", "V999", "v003: nope"},
		{"four digits is not a code", "V0031: nope", "V999", "V0031: nope"},
		{"leading space is not a code", " V003: x", "V999", "V003: x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var fe FieldErrors
			fe.Add("field", tc.msg)
			code, msg, err := DeriveValidation(fe)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tc.wantCode || msg != tc.wantMsg {
				t.Fatalf("DeriveValidation(%q) = (%q, %q); want (%q, %q)", tc.msg, code, msg, tc.wantCode, tc.wantMsg)
			}
		})
	}
}

func TestDeriveValidation_Empty(t *testing.T) {
	if _, _, err := DeriveValidation(FieldErrors{}); !errors.Is(err, ErrEmptyValidationInput) {
		t.Fatalf("empty mapping: err = %v", err)
	}

	var fe FieldErrors
	fe.Add("field")
	fe.Add("other", "V001: present but not first")
	if _, _, err := DeriveValidation(fe); !errors.Is(err, ErrEmptyValidationInput) {
		t.Fatalf("first field without messages: err = %v", err)
	}
}

func TestFieldErrors_OrderAndCopies(t *testing.T) {
	var fe FieldErrors
	fe.Add("b", "first")
	fe.Add("a", "second")
	fe.Add("b", "third")

	if got := fe.Fields(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("Fields() = %v", got)
	}
	if got := fe.Messages("b"); !reflect.DeepEqual(got, []string{"first", "third"}) {
		t.Fatalf("Messages(b) = %v", got)
	}
	if fe.Len() != 2 {
		t.Fatalf("Len() = %d", fe.Len())
	}

	// Returned slices are copies.
	fe.Messages("b")[0] = "mutated"
	fe.Fields()[0] = "mutated"
	if f, m, _ := fe.First(); f != "b" || m != "first" {
		t.Fatalf("First() = (%q, %q) after mutating copies", f, m)
	}

	m := fe.Map()
	if len(m) != 2 || m["a"][0] != "second" {
		t.Fatalf("Map() = %v", m)
	}
	if fe.Messages("missing") != nil {
		t.Fatalf("missing field should have nil messages")
	}
}

func TestFieldErrorsFromMap(t *testing.T) {
	m := map[string][]string{
		"zeta":  {"z"},
		"alpha": {"a"},
		"mid":   {"V002: m"},
	}
	fe := FieldErrorsFromMap(m, "mid", "unknown")
	if got := fe.Fields(); !reflect.DeepEqual(got, []string{"mid", "alpha", "zeta"}) {
		t.Fatalf("Fields() = %v", got)
	}
	code, _, err := DeriveValidation(fe)
	if err != nil || code != "V002" {
		t.Fatalf("code = %q err = %v", code, err)
	}
}
