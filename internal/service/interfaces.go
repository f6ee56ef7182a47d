// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package service implements the application logic of the gallery client: the
// OTP authentication flow and the photo/album operations that keep the
// in-memory catalog, the local cache and the remote service in step.
package service

import (
	"context"

	"github.com/shpixel/gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=./mock/services_mock.go -package=mock

// AuthState is the position in the login handshake. Transitions:
//
//	StateSignedOut → StateCodeRequested → StateVerified → StateReady
//
// StateVerified means authenticated with an incomplete profile; a verify
// response with a complete profile jumps straight to StateReady.
type AuthState int

const (
	StateSignedOut AuthState = iota
	StateCodeRequested
	StateVerified
	StateReady
)

// NextStep tells the caller where to navigate after a successful auth call,
// so UI code never inspects the user record itself.
type NextStep int

const (
	StepEnterCode NextStep = iota
	StepProfileSetup
	StepGallery
)

// AuthService drives the multi-step login handshake against the identity
// service and is the only writer of the session (besides the global
// unauthorized hook, which it also owns via Invalidate).
type AuthService interface {
	// State returns the current handshake position.
	State() AuthState

	// RequestOTP asks the identity service to mail a one-time code.
	// Validates the email locally first; on success transitions to
	// StateCodeRequested and returns the service's confirmation message.
	RequestOTP(ctx context.Context, email string) (string, error)

	// VerifyOTP exchanges the code for a user record and token, writes both
	// into the session atomically and persists them to the local cache.
	// The returned step is StepProfileSetup when the profile is incomplete,
	// StepGallery otherwise. On failure the handshake stays in
	// StateCodeRequested and the session is untouched.
	VerifyOTP(ctx context.Context, email, code string) (NextStep, error)

	// SetupProfile submits the completion form (multipart, optional avatar)
	// and refreshes the session with the returned user and token.
	SetupProfile(ctx context.Context, setup models.ProfileSetup) error

	// Logout invalidates the credential remotely (best-effort) and always
	// clears the session and the cached copy.
	Logout(ctx context.Context) error

	// RestoreSession loads a persisted session from the local cache. A
	// missing row yields store.ErrLocalSessionNotFound; an expired token is
	// discarded and reported as session.ErrTokenExpired.
	RestoreSession(ctx context.Context) (NextStep, error)

	// Invalidate drops the session, the cached copy and the handshake state.
	// Wired to the adapter's unauthorized hook so any 401 anywhere forces
	// re-authentication.
	Invalidate()
}

// UploadInput describes a new photo: the local image file plus the form
// fields the user filled in.
type UploadInput struct {
	FilePath    string
	Title       string
	Description string
	Alt         string
	Tags        []string
}

// GalleryService executes photo and album operations. Mutations are applied
// to the in-memory catalog and the remote service together; when the remote
// call fails the local change is rolled back and the error surfaced.
type GalleryService interface {
	// Restore primes the catalog and preferences from the local cache.
	Restore(ctx context.Context) error

	// Refresh replaces the catalog with the remote collections and rewrites
	// the local cache.
	Refresh(ctx context.Context) error

	// Upload reads the image file, extracts EXIF metadata, builds a local
	// thumbnail, submits everything and adds the stored photo to the catalog.
	Upload(ctx context.Context, input UploadInput) (models.Photo, error)

	// ToggleFavorite flips the favorite flag locally and pushes the change.
	ToggleFavorite(ctx context.Context, id string) error

	// UpdatePhoto edits title/description/tags locally and pushes the change.
	UpdatePhoto(ctx context.Context, photo models.Photo) error

	// DeletePhoto removes the photo remotely and locally, scrubbing album
	// membership.
	DeletePhoto(ctx context.Context, id string) error

	// CreateAlbum creates an album with a fresh id.
	CreateAlbum(ctx context.Context, name, description string) (models.Album, error)

	// DeleteAlbum removes an album; member photos are untouched.
	DeleteAlbum(ctx context.Context, id string) error

	// AddToAlbum adds a photo reference to an album (idempotent).
	AddToAlbum(ctx context.Context, photoID, albumID string) error

	// RemoveFromAlbum drops a photo reference from an album.
	RemoveFromAlbum(ctx context.Context, photoID, albumID string) error
}
