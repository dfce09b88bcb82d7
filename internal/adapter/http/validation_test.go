package http

import (
	"errors"
	"strings"
	"testing"
)

var errTest = errors.New("boom")

func containsFieldMsg(fe []FieldError, field, fragment string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestHex32Validation(t *testing.T) {
	type P struct {
		BorrowerID string `validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{BorrowerID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
	} {
		err := cv.Validate(P{BorrowerID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "BorrowerID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got %+v", s, ToFieldErrors(err))
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 2000, 1.29, 2.00, 0.9} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2059.999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
			t.Fatalf("expected dec2 message for %v, got %+v", v, ToFieldErrors(err))
		}
	}
}

func TestFieldErrorMapping(t *testing.T) {
	type P struct {
		Name    string  `validate:"required"`
		Email   string  `validate:"email"`
		Rate    float64 `validate:"gte=0,lte=100"`
		Purpose string  `validate:"min=10"`
		Status  string  `validate:"oneof=ACTIVE PAID DEFAULTED"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name:    "",
		Email:   "not-an-email",
		Rate:    101,
		Purpose: "short",
		Status:  "CLOSED",
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "valid email address") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Rate", "less than or equal to 100") {
		t.Fatalf("missing lte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Purpose", "at least 10") {
		t.Fatalf("missing min message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Status", "one of: ACTIVE PAID DEFAULTED") {
		t.Fatalf("missing oneof message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errTest)
	if len(fe) != 1 || fe[0].Field != "_" {
		t.Fatalf("got %+v", fe)
	}
}
