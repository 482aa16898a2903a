package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGroup, "unsupported group %q", "Sn")

	if err.Code != ErrCodeInvalidGroup {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGroup)
	}

	if err.Message != `unsupported group "Sn"` {
		t.Errorf("Message = %v, want %v", err.Message, `unsupported group "Sn"`)
	}

	expected := `INVALID_GROUP: unsupported group "Sn"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidPartition, cause, "parse partition")

	if err.Code != ErrCodeInvalidPartition {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPartition)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_PARTITION: parse partition: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidOutput, "test"),
			code:     ErrCodeInvalidOutput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidOutput, "test"),
			code:     ErrCodeTooLarge,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeTooLarge, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeTooLarge,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidArrangement, "test"), ErrCodeInvalidArrangement},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	if !IsInvalid(New(ErrCodeInvalidPartition, "x")) {
		t.Error("IsInvalid(INVALID_PARTITION) = false, want true")
	}
	if IsInvalid(New(ErrCodeTooLarge, "x")) {
		t.Error("IsInvalid(TOO_LARGE) = true, want false")
	}
	if IsInvalid(errors.New("plain")) {
		t.Error("IsInvalid(plain) = true, want false")
	}
}
