// Package apperrors defines the error kinds handlers branch on.
package apperrors

import "errors"

var (
	// ErrValidation means the caller supplied no usable search filters.
	ErrValidation = errors.New("at least one search parameter is required")

	// ErrNotFound means no persisted job matches the requested identifier.
	ErrNotFound = errors.New("job not found")
)
