package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	PasswordRequired   = errors.New("password is required")
	InvalidToken       = errors.New("invalid token")
	InvalidOAuthState  = errors.New("invalid oauth state")
	FailedToCreateUser = errors.New("failed to create user")
)
