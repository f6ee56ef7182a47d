// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package models

// User represents the account record returned by the identity service.
type User struct {
	// ID is the numeric identifier assigned by the identity service.
	ID int64 `json:"id"`

	// Email is the address the user authenticated with. Unique per account.
	Email string `json:"email"`

	// Name is the optional display name, set during profile setup.
	Name *string `json:"name,omitempty"`

	// Phone is the optional contact number, set during profile setup.
	Phone *string `json:"phone,omitempty"`

	// Gender is the optional self-reported gender ("male", "female", "other").
	Gender *string `json:"gender,omitempty"`

	// Avatar is the optional URI of the uploaded avatar image.
	Avatar *string `json:"avatar,omitempty"`

	// IsAdmin grants access to the privileged views. Only the identity
	// service may set it; the client treats it as read-only.
	IsAdmin bool `json:"isAdmin"`

	// IsProfileComplete reports whether the user has finished profile setup.
	// While false, every protected navigation is redirected to the setup
	// screen after login.
	IsProfileComplete bool `json:"isProfileComplete"`
}

// ProfileSetup carries the fields submitted by the profile-completion form.
// AvatarPath, when non-empty, points at a local image file that is attached to
// the multipart request.
type ProfileSetup struct {
	Name       string
	Phone      string
	Gender     string
	AvatarPath string
}
