package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeUnknownStyle, "unknown style: %q", "fancy")
	want := `UNKNOWN_STYLE: unknown style: "fancy"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidFormat, cause, "decode input")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeSpanOutOfBounds, "span exceeds table")

	if !Is(err, ErrCodeSpanOutOfBounds) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidSpan) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidSpan) {
		t.Error("Is should not match plain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeMissingField, "cell has no value")
	outer := fmt.Errorf("tab 2: %w", inner)

	if !Is(outer, ErrCodeMissingField) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
	if GetCode(outer) != ErrCodeMissingField {
		t.Errorf("GetCode = %q, want MISSING_FIELD", GetCode(outer))
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeStyleConflict, "style families conflict")
	if got := UserMessage(err); got != "style families conflict" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidDocumentShape, true},
		{ErrCodeMissingField, true},
		{ErrCodeUnknownStyle, true},
		{ErrCodeStyleConflict, true},
		{ErrCodeInvalidSpan, true},
		{ErrCodeSpanOutOfBounds, true},
		{ErrCodeInvalidStyle, true},
		{ErrCodeInvalidFormat, true},
		{ErrCodeInternal, false},
		{ErrCodeFileNotFound, false},
	}
	for _, tt := range tests {
		err := New(tt.code, "x")
		if got := IsInputError(err); got != tt.want {
			t.Errorf("IsInputError(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
