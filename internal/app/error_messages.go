// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

// Package app contains shared application-layer constants used across the
// SH Pixel client and the dev stub server.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or surfaced in the UI to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgOtpSent is returned after a one-time code has been mailed.
	MsgOtpSent = "OTP sent successfully to your email."

	// MsgOtpSendFailed is returned when the code could not be delivered.
	MsgOtpSendFailed = "Failed to send OTP. Please try again later."

	// MsgInvalidEmailOrOtp is returned when the email has no pending code.
	MsgInvalidEmailOrOtp = "Invalid email or OTP."

	// MsgInvalidOtp is returned when the submitted code does not match.
	MsgInvalidOtp = "Invalid OTP."

	// MsgOtpExpired is returned when the code matched but is no longer valid.
	MsgOtpExpired = "OTP has expired."

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgProfileFieldsRequired is returned when profile setup is submitted
	// with an empty name, phone or gender.
	MsgProfileFieldsRequired = "name, phone and gender are required"

	// MsgPhotoNotFound is returned for operations on an unknown photo id.
	MsgPhotoNotFound = "photo not found"

	// MsgAlbumNotFound is returned for operations on an unknown album id.
	MsgAlbumNotFound = "album not found"

	// MsgDuplicateID is returned when a create request reuses an existing id.
	MsgDuplicateID = "id already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
