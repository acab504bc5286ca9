package wxtouch

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	EREQUEST  = "request"
)

// Error represents an application-specific error. Validation failures are
// reported as an Error with code EINVALID before any request is sent.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wxtouch error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// RequestError is returned when the transport call fails or the service
// responds with a non-2xx status. StatusCode is zero for transport failures,
// in which case Err holds the underlying cause.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API request failed: %s", e.Message)
	}
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError returns a RequestError for a non-2xx response. An empty
// detail falls back to the status text.
func NewRequestError(statusCode int, detail string) *RequestError {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}
	return &RequestError{StatusCode: statusCode, Message: detail}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var re *RequestError
	if errors.As(err, &re) {
		return EREQUEST
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var re *RequestError
	if errors.As(err, &re) {
		return re.Error()
	}
	return "Internal error"
}
