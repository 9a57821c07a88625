package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("already signed up")
	ErrNotSignedUp     = errors.New("not signed up")
	ErrInvalidSeed     = errors.New("invalid seed")
)
