package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("unknown user")
	ErrMissingFields      = errors.New("name, email, and password are required")
	ErrMalformedToken     = errors.New("malformed auth token")
	ErrUnauthenticated    = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrUnknownAdmin       = errors.New("unknown user for franchise admin email")
	ErrFactoryUnavailable = errors.New("failed to fulfill order at factory")
)
