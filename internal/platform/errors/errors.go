// Package errors is the coded error type behind every envelope, HTTP or cli.
// Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for clients. Codes go on the wire as numbers so only append
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything we did not classify
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is a handler panic caught by RecoverJSON
	ErrorCodePanic

	// ErrorCodeUnavailable means the urgency model or the roster is not usable
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is well formed input that cannot be used, bad seed files included
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is a DTO failing its validate tags
	ErrorCodeValidation

	// ErrorCodeJSON is a body that does not decode
	ErrorCodeJSON

	// ErrorCodeNotFound is an unknown route or resource
	ErrorCodeNotFound

	// ErrorCodeTimeout is a request cut off by its deadline
	ErrorCodeTimeout
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeUnavailable:     "unavailable",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeValidation:      "validation",
	ErrorCodeJSON:            "json",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeTimeout:         "timeout",
}

// String names the code for logs
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// HTTPStatusCode is the status an envelope carrying c is sent with
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// Error carries a client safe message and code. The cause stays server side:
// it shows in Error() and logs but never in Wire
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

// Wire is the error part of a response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error class
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input field, if any
func (e *Error) Field() string { return e.field }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns the code of the first *Error in err's chain, Unknown otherwise
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// WithField returns a copy of err tagged with field. Foreign errors are returned as is
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	cp := *e
	cp.field = field
	return &cp
}

// HTTP maps err to a status and its wire form. Foreign errors become Unknown with their text
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError, Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return HTTPStatusCode(e.code), Wire{Code: e.code, Message: e.msg, Field: e.field}
}

// New returns an error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with formatting
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches code and msg to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with formatting
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf returns a body decoding error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a recovered panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns a not ready error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Timeoutf returns a deadline error
func Timeoutf(format string, a ...any) error { return Newf(ErrorCodeTimeout, format, a...) }

// Internalf returns an unclassified error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
