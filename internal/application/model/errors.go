package model

import "errors"

var (
	// ErrApplicationNotFound indicates the application does not exist.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyApplied indicates the user already has a pending application.
	ErrAlreadyApplied = errors.New("a pending application already exists")
	// ErrNotPending indicates the application has already been decided.
	ErrNotPending = errors.New("application has already been decided")
)
