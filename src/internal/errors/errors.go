// Package errors provides domain-specific error types for torwall.
//
// Every step of a run returns one of these errors instead of exiting. The
// CLI driver decides what to do with them: print the message and stop with
// a non-zero status on the first failure.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodePrivilege indicates the tool is not running as the superuser.
	ErrCodePrivilege ErrorCode = "PRIVILEGE_ERROR"

	// ErrCodeIdentity indicates the service account uid could not be resolved.
	ErrCodeIdentity ErrorCode = "IDENTITY_ERROR"

	// ErrCodeCommand indicates an external command (iptables, service) failed.
	ErrCodeCommand ErrorCode = "COMMAND_ERROR"

	// ErrCodeFilesystem indicates a torrc read, rename or write failure.
	ErrCodeFilesystem ErrorCode = "FILESYSTEM_ERROR"

	// ErrCodeConfig indicates a torwall configuration file error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeUsage indicates invalid command line usage.
	ErrCodeUsage ErrorCode = "USAGE_ERROR"

	// ErrCodeSelfCheck indicates that at least one self-check item failed.
	ErrCodeSelfCheck ErrorCode = "SELF_CHECK_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in the chain, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if CodeOf(err) == ErrCodeUsage {
		return 2
	}
	return 1
}

// NewPrivilegeError creates a new privilege error.
func NewPrivilegeError(message string) *Error {
	return New(ErrCodePrivilege, message)
}

// NewIdentityError creates a new identity resolution error.
func NewIdentityError(message string, cause error) *Error {
	return Wrap(ErrCodeIdentity, message, cause)
}

// NewCommandError creates a new external command error.
func NewCommandError(message string, cause error) *Error {
	return Wrap(ErrCodeCommand, message, cause)
}

// NewFilesystemError creates a new filesystem error.
func NewFilesystemError(message string, cause error) *Error {
	return Wrap(ErrCodeFilesystem, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewUsageError creates a new command line usage error.
func NewUsageError(message string) *Error {
	return New(ErrCodeUsage, message)
}

// NewSelfCheckError creates a new self-check failure error.
func NewSelfCheckError(message string) *Error {
	return New(ErrCodeSelfCheck, message)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
