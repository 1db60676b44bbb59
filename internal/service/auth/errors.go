package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid, the signature
	// doesn't match, or the embedded identity is absent
	ErrInvalidToken = errors.New("invalid session token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("session token is missing")

	// ErrUnknownUser indicates a syntactically valid token references a
	// user that no longer exists in the store
	ErrUnknownUser = errors.New("session token references an unknown user")

	// ErrInvalidCredentials indicates a login attempt with a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)
