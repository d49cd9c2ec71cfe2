package core

import (
	"errors"
	"fmt"
)

// User errors
var (
	ErrUserExists         = errors.New("user already exists")          // 400
	ErrUserNotFound       = errors.New("user not found")               // 404
	ErrInvalidCredentials = errors.New("invalid username or password") // 400
)

// Post errors
var (
	ErrPostNotFound = errors.New("post not found") // 404
	ErrPostTooLong  = fmt.Errorf("text must be less than %d characters", MaxPostLength) // 400
)

// Auth errors. ErrUnauthenticated covers every token failure - the gate
// logs the precise reason but clients always see the same message.
var (
	ErrUnauthenticated = errors.New("unauthorized") // 401
)

// Ownership errors. ErrSelfFollow wraps ErrForbidden so both are one kind
// under errors.Is; the transport maps the status per route.
var (
	ErrForbidden  = errors.New("unauthorized")
	ErrSelfFollow = fmt.Errorf("%w: you cannot follow/unfollow yourself", ErrForbidden)
)

// Validation errors (client input)
var (
	ErrMissingFields = errors.New("please fill in all fields") // 400
)
