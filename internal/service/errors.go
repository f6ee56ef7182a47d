package service

import "errors"

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrCodeRequired    = errors.New("one-time code is required")
	ErrProfileRequired = errors.New("name, phone and gender are required")
	ErrTitleRequired   = errors.New("photo title is required")
	ErrNameRequired    = errors.New("album name is required")
	ErrFileRequired    = errors.New("image file is required")

	// ErrRequestInFlight rejects a second identical action while the first
	// one has not resolved yet.
	ErrRequestInFlight = errors.New("previous request is still in flight")

	ErrNotSignedIn = errors.New("not signed in")
)
