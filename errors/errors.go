package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{Code: http.StatusNotFound, Err: errors.New("not found")}
	BadRequest          = HttpError{Code: http.StatusBadRequest, Err: errors.New("bad request")}
	Unauthorized        = HttpError{Code: http.StatusUnauthorized, Err: errors.New("unauthorized")}
	InternalServerError = HttpError{Code: http.StatusInternalServerError, Err: errors.New("internal server error")}
)

// HttpError ties an error to the HTTP status code of the response that caused it.
// Code is zero when no response was received, Cause then holds the transport failure.
// The message is always the one of Err.
type HttpError struct {
	Code  int
	Err   error
	Cause error
}

func New(code int, err error) HttpError {
	return HttpError{Code: code, Err: err}
}

// FromResponse returns nil for 2xx responses and an HttpError wrapping err otherwise
func FromResponse(res *http.Response, err error) error {
	if IsSuccess(res.StatusCode) {
		return nil
	}
	return HttpError{Code: res.StatusCode, Err: err}
}

// Transport wraps a failure that happened before any response was received
func Transport(cause error, err error) error {
	return HttpError{Err: err, Cause: cause}
}

func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// StatusCode returns the status code carried by err, or zero
func StatusCode(err error) int {
	e := HttpError{}
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func (h HttpError) Unwrap() []error {
	if h.Cause == nil {
		return []error{h.Err}
	}
	return []error{h.Err, h.Cause}
}

func (h HttpError) Error() string {
	return h.Err.Error()
}
