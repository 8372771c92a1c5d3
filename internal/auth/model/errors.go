package model

import "errors"

var (
	// ErrEmailNotAllowed indicates the address is outside the allowed campus domains.
	ErrEmailNotAllowed = errors.New("email domain not allowed")
	// ErrNoCodeRequested indicates no one-time code is on record for the email.
	ErrNoCodeRequested = errors.New("no code requested for this email")
	// ErrCodeMismatch indicates the submitted code does not match the stored one.
	ErrCodeMismatch = errors.New("invalid one-time code")
	// ErrUserNotFound indicates the user row does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrOAuthExchange indicates the OAuth code exchange or userinfo fetch failed.
	ErrOAuthExchange = errors.New("oauth exchange failed")
	// ErrUnavailable indicates the identity store is temporarily unreachable.
	ErrUnavailable = errors.New("identity store unavailable")
)
