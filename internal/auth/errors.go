package auth

import "errors"

var (
	// ErrInvalidToken is returned when a token cannot be parsed or
	// carries no subject claim.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("session token expired")
)
