package service

import "errors"

var (
	// ErrNoUserSession is returned when a remote-touching operation runs
	// without an authenticated session.
	ErrNoUserSession = errors.New("no authenticated user session")

	// ErrVerificationFailed marks a restored backup snapshot that no
	// longer passes shape validation.
	ErrVerificationFailed = errors.New("data integrity verification failed")

	// ErrNothingToRestore is returned when neither a backup snapshot nor
	// the remote store can supply shapes for an emergency restore.
	ErrNothingToRestore = errors.New("no restorable shape data found")
)
