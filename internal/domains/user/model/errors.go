package model

import "errors"

// Error codes
const (
	ErrCodeUserNotFound  = "USR001"
	ErrCodeUsernameTaken = "USR002"
	ErrCodeEmailTaken    = "USR003"
	ErrCodeInvalidLogin  = "USR004"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrInvalidLogin  = errors.New("invalid username or password")
)
