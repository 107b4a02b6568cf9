package model

import "errors"

// Error codes
const (
	ErrCodeSelfFollow = "FLW001"
)

var (
	// ErrSelfFollow is surfaced to the caller with a visible message,
	// unlike the silent refusals elsewhere.
	ErrSelfFollow = errors.New("cannot follow yourself")
)
