// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package models

// AuthResponse is returned by the identity service on a successful OTP
// verification or profile-setup call. User and Token always arrive together;
// the session layer stores them atomically.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// OtpResponse is returned after an OTP has been requested for an email.
type OtpResponse struct {
	Email   string `json:"email"`
	OtpSent bool   `json:"otpSent"`
	Message string `json:"message"`
}

// APIError is the error envelope used by the remote service for non-2xx
// responses. Either Error or Message carries the human-readable text.
type APIError struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text returns the human-readable error text, preferring Error over Message.
func (e APIError) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
