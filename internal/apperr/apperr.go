package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable error category that the HTTP layer maps to a status.
type Code string

const (
	CodeInvalid  Code = "invalid"
	CodeNotFound Code = "not_found"
	CodeStore    Code = "store"
	CodeInternal Code = "internal"
)

// AppError carries a code, a client-facing message and the wrapped cause.
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Invalid reports missing or malformed input.
func Invalid(message string) *AppError {
	return New(CodeInvalid, message)
}

// NotFound reports that a referenced record does not exist.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// Store wraps a datastore failure. The message is the cause's text, passed through verbatim.
func Store(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return &AppError{Code: CodeStore, Message: err.Error(), Err: err}
}

// CodeOf returns the code of the first AppError in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
