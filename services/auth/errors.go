package auth

import "errors"

var (
	// ErrNotFound means no user record matched the given email.
	ErrNotFound = errors.New("no account found for this email")

	// ErrInvalidCredentials means the email matched but the password did not,
	// or the admin pair did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
