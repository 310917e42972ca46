package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user with email or username already exists")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenUnknown       = errors.New("token verification failed")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrTokenReuseDetected = errors.New("refresh token reuse detected")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyExists      = errors.New("resource already exists")
)

// ValidationError carries a caller-facing message for rejected input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidation(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
