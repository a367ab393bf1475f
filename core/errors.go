// Package core provides error codes and error wrapping shared by all
// tofu packages. Failures are signalled with an error carrying one of
// the codes below, so that callers can react without matching on
// message strings.
package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

// AppError is an error with an associated error code and a message
// suitable for presenting to users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	error
	code int
	msg  string
}

var _ AppError = codedError{}

func (e codedError) Unwrap() error       { return e.error }
func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return codedError{
		errors.New(defaultMessage(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error, adding an error code and a user message to
// the error chain. If err is nil, an error denoting the code is created.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(defaultMessage(code))
	}
	return codedError{err, code, fmt.Sprintf(format, v...)}
}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap a nil error.
func ErrorWithCode(err error, code int) error {
	return WrapError(err, code, defaultMessage(code))
}

// Code returns the error code associated with an error.
// If the error chain carries no code, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error, or a
// generic message derived from Code(err).
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return defaultMessage(Code(err))
}

func defaultMessage(code int) string {
	switch code {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}
