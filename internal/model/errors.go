package model

import "errors"

var (
	// ErrNotFound means the entity is absent or the caller does not own it.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the token is missing, invalid or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidUpdate means the update touches a field outside the permitted set.
	ErrInvalidUpdate = errors.New("invalid update parameters")
	// ErrValidation means entity fields are malformed.
	ErrValidation = errors.New("validation failed")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
)
