package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrNotFound           = errors.New("requested resource not found")
	ErrRealmNotFound      = errors.New("realm not found")
	ErrStreamNotFound     = errors.New("stream not found")
)
