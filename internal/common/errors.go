// Package common defines shared sentinel errors used across the repository,
// service and HTTP layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a request rejected before any backend call was made
	// (a required field is missing or empty).
	ErrValidation = errors.New("validation error")

	// ErrTransport marks a failure talking to the database or object storage.
	ErrTransport = errors.New("backend unavailable")
)
