package auth

import (
	"errors"
	"net/http"
)

// Code identifies an account failure the client can show a message for.
type Code string

const (
	CodeEmailInUse         Code = "auth/email-already-in-use"
	CodeInvalidEmail       Code = "auth/invalid-email"
	CodeWeakPassword       Code = "auth/weak-password"
	CodeUserNotFound       Code = "auth/user-not-found"
	CodeWrongPassword      Code = "auth/wrong-password"
	CodeInvalidCredential  Code = "auth/invalid-credential"
	CodeNetworkFailed      Code = "auth/network-request-failed"
	CodeTooManyRequests    Code = "auth/too-many-requests"
	CodeUserDisabled       Code = "auth/user-disabled"
	CodeInvalidDisplayName Code = "auth/invalid-display-name"
)

// Error is a coded account error. Compare with errors.Is against the Err* values.
type Error struct {
	Code Code
}

func (e *Error) Error() string { return string(e.Code) }

var (
	ErrEmailInUse         = &Error{CodeEmailInUse}
	ErrInvalidEmail       = &Error{CodeInvalidEmail}
	ErrWeakPassword       = &Error{CodeWeakPassword}
	ErrUserNotFound       = &Error{CodeUserNotFound}
	ErrInvalidCredential  = &Error{CodeInvalidCredential}
	ErrInvalidDisplayName = &Error{CodeInvalidDisplayName}
)

// Message maps err to the text shown to the user.
func Message(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return "An unexpected error occurred. Please try again."
	}
	switch ae.Code {
	case CodeEmailInUse:
		return "This email is already registered. Please sign in instead."
	case CodeInvalidEmail:
		return "Invalid email address. Please check and try again."
	case CodeWeakPassword:
		return "Password should be at least 6 characters."
	case CodeUserNotFound, CodeWrongPassword, CodeInvalidCredential:
		return "Invalid email or password."
	case CodeNetworkFailed:
		return "Network error. Please check your connection and try again."
	case CodeTooManyRequests:
		return "Too many failed attempts. Please try again later."
	case CodeUserDisabled:
		return "This account has been disabled. Please contact support."
	case CodeInvalidDisplayName:
		return "Display name cannot be empty."
	default:
		return "Authentication failed. Please try again."
	}
}

func statusFor(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case CodeEmailInUse:
		return http.StatusConflict
	case CodeUserNotFound, CodeWrongPassword, CodeInvalidCredential:
		return http.StatusUnauthorized
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeUserDisabled:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
