package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodePrivilege, Message: "must be run as root"},
			expected: "[PRIVILEGE_ERROR] must be run as root",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeCommand, "failed to restart service tor", errors.New("exit status 1")),
			expected: "[COMMAND_ERROR] failed to restart service tor: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected errors.Is to find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeIdentity, Message: "test error"}
	err2 := &Error{Code: ErrCodeIdentity, Message: "another error"}
	err3 := &Error{Code: ErrCodeCommand, Message: "command error"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}
	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("setup failed: %w", NewFilesystemError("failed to rename torrc", nil))

	if code := CodeOf(wrapped); code != ErrCodeFilesystem {
		t.Errorf("Expected %v, got %v", ErrCodeFilesystem, code)
	}
	if code := CodeOf(errors.New("plain")); code != ErrCodeInternal {
		t.Errorf("Expected %v for plain errors, got %v", ErrCodeInternal, code)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", NewUsageError("--setup and --flush are mutually exclusive"), 2},
		{"privilege", NewPrivilegeError("not root"), 1},
		{"command", NewCommandError("iptables failed", errors.New("exit status 4")), 1},
		{"plain", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		err  *Error
		code ErrorCode
	}{
		{NewPrivilegeError("m"), ErrCodePrivilege},
		{NewIdentityError("m", cause), ErrCodeIdentity},
		{NewCommandError("m", cause), ErrCodeCommand},
		{NewFilesystemError("m", cause), ErrCodeFilesystem},
		{NewConfigError("m", cause), ErrCodeConfig},
		{NewValidationError("m", cause), ErrCodeValidation},
		{NewUsageError("m"), ErrCodeUsage},
		{NewSelfCheckError("m"), ErrCodeSelfCheck},
		{NewInternalError("m", cause), ErrCodeInternal},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("Expected code %v, got %v", tt.code, tt.err.Code)
		}
		if tt.err.Message != "m" {
			t.Errorf("Expected message to be preserved for %v", tt.code)
		}
	}
}
