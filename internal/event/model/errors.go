package model

import "errors"

var (
	// ErrInvalidEventDate indicates event_date could not be parsed.
	ErrInvalidEventDate = errors.New("event_date must be RFC 3339")
)
