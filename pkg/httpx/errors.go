package httpx

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure: connection refused, DNS,
// cancelled context. The request never produced an HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request %s: unexpected status %d", e.URL, e.Code)
}

// DecodeError reports a response body that does not match any recognized
// shape for the endpoint.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
