package errs

import (
	"errors"
	"fmt"
)

// Application error codes. They map a failure to a rough category,
// which the http layer translates into a status code.
const (
	ECONFLICT     = "conflict"
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EUNAUTHORIZED = "unauthorized"
)

// Error is the application error type. Message is safe to show to users,
// Code is machine-readable.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not meant for end users,
// use Message for that.
func (e *Error) Error() string {
	return fmt.Sprintf("warbler error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errors shared by multiple services.
var (
	IdInvalid          = Errorf(EINVALID, "Id provided was invalid.")
	UserIdRequired     = Errorf(EINVALID, "User id is required.")
	InvalidCredentials = Errorf(EUNAUTHORIZED, "Invalid credentials.")
)
