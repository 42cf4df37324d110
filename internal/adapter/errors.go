package adapter

import "errors"

var (
	// ErrNotAuthenticated is returned when no bearer token is set or the
	// remote store rejects the credentials. Non-retryable.
	ErrNotAuthenticated = errors.New("client is not authenticated")

	// ErrInvalidData is returned when a shape fails the validation gate
	// before any network call, or the remote store rejects the payload.
	// Non-retryable.
	ErrInvalidData = errors.New("invalid shape data rejected")

	// ErrShapeNotFound is returned when a targeted document does not
	// exist remotely.
	ErrShapeNotFound = errors.New("remote shape was not found")

	// ErrUnknown wraps transport and server failures that are eligible
	// for the retry-with-delay policy.
	ErrUnknown = errors.New("unknown remote store error")
)
