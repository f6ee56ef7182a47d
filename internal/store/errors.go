package store

import "errors"

var (
	ErrPhotoExists = errors.New("photo with this id already exists")
	ErrAlbumExists = errors.New("album with this id already exists")

	ErrLocalSessionNotFound = errors.New("local session not found")
)
