package model

import "errors"

// Error codes
const (
	ErrCodePostNotFound    = "PST001"
	ErrCodeGroupRefInvalid = "PST002"
	ErrCodeTextRequired    = "PST003"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrGroupRefInvalid marks a create/edit that references a group
	// that does not exist.
	ErrGroupRefInvalid = errors.New("referenced group does not exist")
	ErrTextRequired    = errors.New("post text is required")
	// ErrNotAuthor marks an edit attempt by someone other than the
	// author. Callers redirect without surfacing an error.
	ErrNotAuthor = errors.New("requester is not the post author")
)
