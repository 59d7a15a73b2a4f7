package omada

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a lookup matched nothing in the controller
// inventory. Absence is a normal outcome, not a transport failure.
var ErrNotFound = errors.New("not found")

// AuthError indicates the controller rejected the credentials or returned
// no usable token from a grant or refresh call.
type AuthError struct {
	Code int // controller error code, 0 when the failure was HTTP-level
	Msg  string
	Err  error
}

func (e *AuthError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("authentication failed: %s: %v", e.Msg, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("authentication failed (code %d): %s", e.Code, e.Msg)
	default:
		return fmt.Sprintf("authentication failed: %s", e.Msg)
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a successfully transported call whose response envelope
// carried a non-zero controller error code.
type APIError struct {
	Status int // HTTP status of the response
	Code   int // controller error code, 0 when the body carried no envelope
	Msg    string
}

func (e *APIError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("controller rejected request (http %d): %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("controller error %d (http %d): %s", e.Code, e.Status, e.Msg)
}

// NetworkError is a transport-level failure: connection error, timeout,
// unexpected status without a decodable envelope, or a malformed body.
type NetworkError struct {
	Op     string
	Status int // non-zero when an HTTP response arrived
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err represents an absent entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthError reports whether err originated from a failed grant or refresh.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
