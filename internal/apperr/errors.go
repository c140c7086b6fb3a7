// Package apperr defines the error taxonomy shared by the store and the HTTP
// surface. Handlers classify errors with errors.Is and map them to status
// codes; anything outside the taxonomy is treated as a store failure.
package apperr

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)
