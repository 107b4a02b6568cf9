package model

import "errors"

// Error codes
const (
	ErrCodeTextRequired = "CMT001"
)

var (
	// ErrTextRequired marks an empty comment. The add-comment flow
	// drops it silently and redirects back to the post.
	ErrTextRequired = errors.New("comment text is required")
)
