package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password/token")
	ErrIncorrectLoginUrl  = errors.New("incorrect login URL")
)

// AuthError is returned by Login. StatusCode is zero when the request never
// got a response, in which case Err is the transport error.
type AuthError struct {
	StatusCode int
	Err        error
}

func newStatusError(status int) *AuthError {
	switch status {
	case http.StatusForbidden:
		return &AuthError{StatusCode: status, Err: ErrInvalidCredentials}
	case http.StatusNotFound:
		return &AuthError{StatusCode: status, Err: ErrIncorrectLoginUrl}
	}
	return &AuthError{StatusCode: status}
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("login connection failed: %s", e.Err.Error())
	}
	if e.Err != nil {
		return fmt.Sprintf("login failed: %s (%d)", e.Err.Error(), e.StatusCode)
	}
	return fmt.Sprintf("login failed, status code: %d", e.StatusCode)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
