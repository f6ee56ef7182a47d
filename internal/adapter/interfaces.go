// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package adapter provides the transport layer for talking to the SH Pixel
// identity and gallery services.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the HTTP protocol. Errors are mapped from HTTP status codes to
// the sentinel values in errors.go so callers can use [errors.Is] for
// transport-agnostic handling ([ErrUnauthorized] for 401, [ErrConflict] for
// 409, and so on).
//
// Cross-cutting contract: every 401 response, from any endpoint and not only
// the auth ones, fires the unauthorized hook before the error is returned,
// so the session layer can drop its credential and force re-authentication.
package adapter

import (
	"context"

	"github.com/shpixel/gallery/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote identity and gallery
// services. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to sentinel values.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful VerifyOTP or
	// SetupProfile, and with "" on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// OnUnauthorized registers the hook fired whenever any request is
	// rejected with 401. The adapter clears its own token before calling it.
	OnUnauthorized(hook func())

	// RequestOTP asks the identity service to mail a one-time code to email.
	RequestOTP(ctx context.Context, email string) (models.OtpResponse, error)

	// VerifyOTP exchanges the emailed code for a user record and bearer
	// token. On success the token is stored via SetToken.
	VerifyOTP(ctx context.Context, email, code string) (models.AuthResponse, error)

	// SetupProfile submits the profile-completion form as multipart data,
	// attaching the avatar file when setup.AvatarPath is non-empty. On
	// success the refreshed token is stored via SetToken.
	SetupProfile(ctx context.Context, setup models.ProfileSetup) (models.AuthResponse, error)

	// Logout asks the service to invalidate the current credential.
	// Best-effort: the caller clears local state regardless of the outcome.
	Logout(ctx context.Context) error

	// ListPhotos fetches the user's photo collection.
	ListPhotos(ctx context.Context) ([]models.Photo, error)

	// UploadPhoto submits a new photo (metadata plus the image file at
	// filePath) as multipart data and returns the stored record.
	UploadPhoto(ctx context.Context, photo models.Photo, filePath string) (models.Photo, error)

	// UpdatePhoto patches the mutable attributes of an existing photo.
	UpdatePhoto(ctx context.Context, photo models.Photo) error

	// DeletePhoto removes the photo with the given id.
	DeletePhoto(ctx context.Context, id string) error

	// ListAlbums fetches the user's albums.
	ListAlbums(ctx context.Context) ([]models.Album, error)

	// CreateAlbum stores a new album.
	CreateAlbum(ctx context.Context, album models.Album) error

	// UpdateAlbum patches an existing album (name, description, cover,
	// membership).
	UpdateAlbum(ctx context.Context, album models.Album) error

	// DeleteAlbum removes the album with the given id. Member photos are
	// not affected.
	DeleteAlbum(ctx context.Context, id string) error
}
