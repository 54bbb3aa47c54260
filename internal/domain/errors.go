package domain

import "errors"

var (
	// ErrAuthRequired is returned when an operation requires a signed-in user
	ErrAuthRequired = errors.New("user is not signed in")

	// ErrMissingCredentials is returned when the bearer token or storage key is absent
	ErrMissingCredentials = errors.New("missing bearer token or storage key")

	// ErrNoUserStorage is returned when the remote trigger document does not exist
	ErrNoUserStorage = errors.New("user storage does not exist")

	// ErrBackendFailure is returned when a collaborator call fails during a
	// state-mutating sequence. Callers receive only this generic error; the
	// underlying cause goes to the log channel.
	ErrBackendFailure = errors.New("backend request failed")

	// ErrMalformedNotification is returned when a raw notification does not
	// match any known category schema
	ErrMalformedNotification = errors.New("malformed notification")
)
