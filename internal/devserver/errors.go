package devserver

import "errors"

var (
	errInvalidEmailOrOTP = errors.New("invalid email or otp")
	errInvalidOTP        = errors.New("invalid otp")
	errOTPExpired        = errors.New("otp expired")
)
